package main

import (
	"fmt"
	"os"
	"strconv"

	textpkg "github.com/example/go-viet-tts/internal/text"
	"github.com/spf13/cobra"
)

func newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number <n>",
		Short: "Print the Vietnamese numeral phrase for an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(os.Stdout, textpkg.NumberToWords(n))
			return err
		},
	}

	return cmd
}
