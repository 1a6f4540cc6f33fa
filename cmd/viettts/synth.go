package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/example/go-viet-tts/internal/tts"
	"github.com/spf13/cobra"
)

func newSynthCmd() *cobra.Command {
	var text string
	var out string
	var voicePrompt string
	var exaggeration float64
	var cfgWeight float64
	var temperature float64

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Normalize text and synthesize it to WAV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			inputText, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			p := tts.ParamsFromConfig(cfg.TTS)
			if voicePrompt != "" {
				p.VoicePrompt = voicePrompt
			}
			if cmd.Flags().Changed("exaggeration") {
				p.Exaggeration = exaggeration
			}
			if cmd.Flags().Changed("cfg-weight") {
				p.CFGWeight = cfgWeight
			}
			if cmd.Flags().Changed("temperature") {
				p.Temperature = temperature
			}

			svc := tts.NewService(cfg)
			wavData, err := svc.Synthesize(cmd.Context(), inputText, p)
			if err != nil {
				return mapSynthError(err)
			}

			return writeSynthOutput(out, wavData, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to synthesize (if empty, read from stdin)")
	cmd.Flags().StringVar(&out, "out", "out.wav", "Output WAV path ('-' for stdout)")
	cmd.Flags().StringVar(&voicePrompt, "voice-prompt", "", "Reference voice WAV sample (overrides config)")
	cmd.Flags().Float64Var(&exaggeration, "exaggeration", 0.5, "Emotion/expressiveness scalar in [0,1]")
	cmd.Flags().Float64Var(&cfgWeight, "cfg-weight", 0.2, "Guidance weight (0.1-0.3 recommended, 0 disallowed)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.8, "Sampling temperature")

	return cmd
}

func writeSynthOutput(outPath string, wavData []byte, stdout io.Writer) error {
	if outPath == "-" {
		if stdout == nil {
			return fmt.Errorf("stdout writer is nil")
		}
		_, err := stdout.Write(wavData)
		return err
	}
	return os.WriteFile(outPath, wavData, 0o644)
}

func mapSynthError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("synth failed: engine executable not found; set --tts-cli-path or VIETTTS_TTS_CLI_PATH: %w", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("synth failed: engine returned non-zero exit; check stderr details above: %w", err)
	}

	return err
}
