package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/example/go-viet-tts/internal/audio"
)

// DefaultExecutable is the synthesis engine binary used when no explicit
// path is configured.
const DefaultExecutable = "chatterbox-tts"

// Engine produces a waveform from already-normalized text. Implementations
// own their own latency and failure modes; the pipeline imposes no timeout
// beyond the caller's context.
type Engine interface {
	Synthesize(ctx context.Context, text string, p Params) (samples []float32, sampleRate int, err error)
}

// CLIEngine shells out to an external synthesis executable: text on stdin,
// WAV on stdout.
type CLIEngine struct {
	path   string
	stderr io.Writer
}

func NewCLIEngine(path string) *CLIEngine {
	if path == "" {
		path = DefaultExecutable
	}
	return &CLIEngine{path: path}
}

// WithStderr forwards the subprocess's stderr, for surfacing engine
// diagnostics in the CLI.
func (e *CLIEngine) WithStderr(w io.Writer) *CLIEngine {
	e.stderr = w
	return e
}

func (e *CLIEngine) Synthesize(ctx context.Context, text string, p Params) ([]float32, int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, 0, fmt.Errorf("empty input text")
	}

	args := []string{
		"generate",
		"--text", "-",
		"--output-path", "-",
		"--exaggeration", formatFloat(p.Exaggeration),
		"--cfg-weight", formatFloat(p.CFGWeight),
		"--temperature", formatFloat(p.Temperature),
	}
	if p.VoicePrompt != "" {
		args = append(args, "--audio-prompt", p.VoicePrompt)
	}

	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.Stdin = strings.NewReader(text)
	if e.stderr != nil {
		cmd.Stderr = e.stderr
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, 0, fmt.Errorf("run %s: %w", e.path, err)
	}

	samples, rate, err := audio.DecodeWAV(out.Bytes())
	if err != nil {
		return nil, 0, fmt.Errorf("decode engine output: %w", err)
	}
	return samples, rate, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
