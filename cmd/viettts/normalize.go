package main

import (
	"fmt"
	"os"

	"github.com/example/go-viet-tts/internal/segment"
	textpkg "github.com/example/go-viet-tts/internal/text"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var text string
	var noAbbrev bool
	var segmentWords bool
	var validate bool

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Run the Vietnamese text pipeline and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			if validate && !textpkg.ValidateVietnamese(input) {
				return fmt.Errorf("input contains non-Vietnamese alphabetic characters")
			}

			expand := cfg.Text.ExpandAbbreviations && !noAbbrev
			out := textpkg.Preprocess(input, expand)

			if segmentWords || cfg.Text.Segment {
				var seg textpkg.Segmenter
				if c := segment.Detect(cfg.Text.SegmenterPath); c != nil {
					seg = c
				}
				out = textpkg.SegmentWords(cmd.Context(), seg, out)
			}

			_, err = fmt.Fprintln(os.Stdout, out)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to normalize (if empty, read from stdin)")
	cmd.Flags().BoolVar(&noAbbrev, "no-abbrev", false, "Skip abbreviation expansion")
	cmd.Flags().BoolVar(&segmentWords, "segment", false, "Apply word segmentation when the segmenter is available")
	cmd.Flags().BoolVar(&validate, "validate", false, "Fail when the input contains foreign-script letters")

	return cmd
}
