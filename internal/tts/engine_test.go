package tts

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/example/go-viet-tts/internal/audio"
)

func TestCLIEngineSynthesize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fixture requires a POSIX shell")
	}

	dir := t.TempDir()

	wavData, err := audio.EncodeWAV([]float32{0, 0.5, -0.5}, 24000)
	if err != nil {
		t.Fatalf("build WAV fixture: %v", err)
	}
	wavPath := filepath.Join(dir, "out.wav")
	if err := os.WriteFile(wavPath, wavData, 0o644); err != nil {
		t.Fatalf("write WAV fixture: %v", err)
	}

	// Fake engine: records its args and stdin, then emits the WAV fixture.
	argsPath := filepath.Join(dir, "args.txt")
	textPath := filepath.Join(dir, "text.txt")
	script := filepath.Join(dir, "fake-engine")
	fixture := "#!/bin/sh\n" +
		"printf '%s ' \"$@\" > " + argsPath + "\n" +
		"cat > " + textPath + "\n" +
		"cat " + wavPath + "\n"
	if err := os.WriteFile(script, []byte(fixture), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	engine := NewCLIEngine(script)
	p := Params{VoicePrompt: "ref.wav", Exaggeration: 0.5, CFGWeight: 0.2, Temperature: 0.8}

	samples, rate, err := engine.Synthesize(context.Background(), "xin chào", p)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if rate != 24000 {
		t.Errorf("sample rate = %d, want 24000", rate)
	}
	if len(samples) != 3 {
		t.Errorf("decoded %d samples, want 3", len(samples))
	}

	argsData, err := os.ReadFile(argsPath)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	args := strings.TrimSpace(string(argsData))
	for _, want := range []string{
		"generate",
		"--text -",
		"--output-path -",
		"--exaggeration 0.5",
		"--cfg-weight 0.2",
		"--temperature 0.8",
		"--audio-prompt ref.wav",
	} {
		if !strings.Contains(args, want) {
			t.Errorf("engine args %q missing %q", args, want)
		}
	}

	textData, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatalf("read recorded stdin: %v", err)
	}
	if got := string(textData); got != "xin chào" {
		t.Errorf("engine stdin = %q, want the input text", got)
	}
}

func TestCLIEngineOmitsAudioPromptWhenUnset(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fixture requires a POSIX shell")
	}

	dir := t.TempDir()

	wavData, err := audio.EncodeWAV([]float32{0.1}, 24000)
	if err != nil {
		t.Fatalf("build WAV fixture: %v", err)
	}
	wavPath := filepath.Join(dir, "out.wav")
	if err := os.WriteFile(wavPath, wavData, 0o644); err != nil {
		t.Fatalf("write WAV fixture: %v", err)
	}

	argsPath := filepath.Join(dir, "args.txt")
	script := filepath.Join(dir, "fake-engine")
	fixture := "#!/bin/sh\n" +
		"printf '%s ' \"$@\" > " + argsPath + "\n" +
		"cat " + wavPath + "\n"
	if err := os.WriteFile(script, []byte(fixture), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	engine := NewCLIEngine(script)
	if _, _, err := engine.Synthesize(context.Background(), "xin chào", validParams()); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	argsData, err := os.ReadFile(argsPath)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	if strings.Contains(string(argsData), "--audio-prompt") {
		t.Errorf("engine args %q include --audio-prompt without a voice prompt", argsData)
	}
}

func TestCLIEngineRejectsEmptyText(t *testing.T) {
	engine := NewCLIEngine("")
	if _, _, err := engine.Synthesize(context.Background(), "   ", validParams()); err == nil {
		t.Fatal("Synthesize accepted whitespace-only text")
	}
}

func TestCLIEngineMissingExecutable(t *testing.T) {
	engine := NewCLIEngine(filepath.Join(t.TempDir(), "no-such-engine"))
	if _, _, err := engine.Synthesize(context.Background(), "xin chào", validParams()); err == nil {
		t.Fatal("Synthesize succeeded with a missing engine executable")
	}
}
