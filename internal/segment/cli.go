// Package segment adapts an external Vietnamese word-segmentation
// executable to the pipeline's Segmenter interface. The capability is
// probed once at startup; when the executable is absent the pipeline
// simply runs without segmentation.
package segment

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultExecutable is the segmenter binary looked up on PATH when no
// explicit path is configured.
const DefaultExecutable = "vn-segment"

// CLI invokes an external word segmenter as a subprocess: text on stdin,
// segmented text (multi-syllable words joined with underscores) on stdout.
type CLI struct {
	path string
}

// Detect probes for the segmenter executable and returns a ready client,
// or nil when the capability is absent. Callers must treat a nil result as
// "no segmentation" rather than an error; this is decided once per process.
func Detect(executable string) *CLI {
	if executable == "" {
		executable = DefaultExecutable
	}
	path, err := exec.LookPath(executable)
	if err != nil {
		return nil
	}
	return &CLI{path: path}
}

// Segment runs text through the external segmenter.
func (c *CLI) Segment(ctx context.Context, text string) (string, error) {
	cmd := exec.CommandContext(ctx, c.path, "--format", "text")
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("run %s: %w: %s", c.path, err, detail)
		}
		return "", fmt.Errorf("run %s: %w", c.path, err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%s produced no output", c.path)
	}
	return out, nil
}
