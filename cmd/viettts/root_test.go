package main

import (
	"strings"
	"testing"
)

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"normalize", "number", "synth", "serve", "health"}
	for _, name := range want {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected subcommand %q not found in root", name)
		}
	}
}

func TestNewRootCmd_HasPersistentConfigFlag(t *testing.T) {
	root := NewRootCmd()
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config persistent flag to be registered")
	}
}

func TestSetupLogger_DoesNotPanic(_ *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		setupLogger(level)
	}
}

func TestSetupLogger_InvalidLevelFallsBackToInfo(_ *testing.T) {
	// Should not panic on invalid level.
	setupLogger("not-a-level")
}

func TestRequireConfig_FailsWhenNotInitialized(t *testing.T) {
	orig := cfgLoaded

	t.Cleanup(func() { cfgLoaded = orig })

	cfgLoaded = false

	_, err := requireConfig()
	if err == nil {
		t.Fatal("expected error when config is not loaded")
	}
}

func TestReadInputText(t *testing.T) {
	t.Run("flag takes precedence", func(t *testing.T) {
		got, err := readInputText("xin chào", strings.NewReader("ignored"))
		if err != nil {
			t.Fatalf("readInputText: %v", err)
		}
		if got != "xin chào" {
			t.Errorf("readInputText = %q, want flag value", got)
		}
	})

	t.Run("falls back to stdin", func(t *testing.T) {
		got, err := readInputText("", strings.NewReader("  từ stdin \n"))
		if err != nil {
			t.Fatalf("readInputText: %v", err)
		}
		if got != "từ stdin" {
			t.Errorf("readInputText = %q, want trimmed stdin", got)
		}
	})

	t.Run("empty everywhere errors", func(t *testing.T) {
		if _, err := readInputText("", strings.NewReader("  \n")); err == nil {
			t.Fatal("readInputText accepted empty input")
		}
	})
}
