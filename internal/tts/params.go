package tts

import (
	"fmt"

	"github.com/example/go-viet-tts/internal/config"
)

// Params are the caller-supplied synthesis knobs passed through to the
// engine. The normalization pipeline itself is unaware of them.
type Params struct {
	// VoicePrompt is the path to a reference WAV sample for voice cloning.
	// Empty means the engine's built-in voice.
	VoicePrompt string

	// Exaggeration controls emotion/expressiveness, in [0, 1].
	Exaggeration float64

	// CFGWeight is the classifier-free guidance weight. 0 is disallowed;
	// values in [0.1, 0.3] track the reference voice best.
	CFGWeight float64

	// Temperature is the sampling temperature, > 0.
	Temperature float64
}

// ParamsFromConfig builds Params from the configured defaults.
func ParamsFromConfig(cfg config.TTSConfig) Params {
	return Params{
		VoicePrompt:  cfg.VoicePrompt,
		Exaggeration: cfg.Exaggeration,
		CFGWeight:    cfg.CFGWeight,
		Temperature:  cfg.Temperature,
	}
}

// Validate checks parameter ranges before they reach the engine.
func (p Params) Validate() error {
	if p.Exaggeration < 0 || p.Exaggeration > 1 {
		return fmt.Errorf("exaggeration %v outside [0, 1]", p.Exaggeration)
	}
	if p.CFGWeight <= 0 {
		return fmt.Errorf("cfg weight %v must be positive (0.1-0.3 recommended)", p.CFGWeight)
	}
	if p.Temperature <= 0 {
		return fmt.Errorf("temperature %v must be positive", p.Temperature)
	}
	return nil
}
