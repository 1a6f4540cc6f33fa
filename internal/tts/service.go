package tts

import (
	"context"
	"fmt"

	"github.com/example/go-viet-tts/internal/audio"
	"github.com/example/go-viet-tts/internal/config"
	"github.com/example/go-viet-tts/internal/segment"
	"github.com/example/go-viet-tts/internal/text"
)

// Service composes the text pipeline with a synthesis engine: raw text goes
// through PreprocessForTTS (and optional word segmentation), the engine
// returns a waveform, and the result is encoded as WAV bytes.
type Service struct {
	engine       Engine
	seg          text.Segmenter
	expandAbbrev bool
	defaults     Params
}

func NewService(cfg config.Config) *Service {
	svc := &Service{
		engine:       NewCLIEngine(cfg.TTS.CLIPath),
		expandAbbrev: cfg.Text.ExpandAbbreviations,
		defaults:     ParamsFromConfig(cfg.TTS),
	}
	if cfg.Text.Segment {
		// Capability detection happens once, here. A missing segmenter
		// leaves seg nil and the pipeline runs without segmentation.
		if c := segment.Detect(cfg.Text.SegmenterPath); c != nil {
			svc.seg = c
		}
	}
	return svc
}

// Defaults returns the configured default synthesis parameters.
func (s *Service) Defaults() Params {
	return s.defaults
}

// Preprocess runs the text pipeline exactly as Synthesize would, without
// calling the engine.
func (s *Service) Preprocess(ctx context.Context, raw string) string {
	out := text.Preprocess(raw, s.expandAbbrev)
	return text.SegmentWords(ctx, s.seg, out)
}

// Synthesize normalizes raw text and renders it through the engine,
// returning WAV bytes.
func (s *Service) Synthesize(ctx context.Context, raw string, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synthesis params: %w", err)
	}

	prepared := s.Preprocess(ctx, raw)
	if prepared == "" {
		return nil, fmt.Errorf("no speakable text after preprocessing")
	}

	samples, rate, err := s.engine.Synthesize(ctx, prepared, p)
	if err != nil {
		return nil, err
	}

	wavData, err := audio.EncodeWAV(samples, rate)
	if err != nil {
		return nil, fmt.Errorf("encode synthesis WAV: %w", err)
	}
	return wavData, nil
}
