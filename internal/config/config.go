package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Server   ServerConfig `mapstructure:"server"`
	TTS      TTSConfig    `mapstructure:"tts"`
	Text     TextConfig   `mapstructure:"text"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	Workers         int    `mapstructure:"workers"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type TTSConfig struct {
	CLIPath      string  `mapstructure:"cli_path"`
	VoicePrompt  string  `mapstructure:"voice_prompt"`
	Exaggeration float64 `mapstructure:"exaggeration"`
	CFGWeight    float64 `mapstructure:"cfg_weight"`
	Temperature  float64 `mapstructure:"temperature"`
}

type TextConfig struct {
	ExpandAbbreviations bool   `mapstructure:"expand_abbreviations"`
	Segment             bool   `mapstructure:"segment"`
	SegmenterPath       string `mapstructure:"segmenter_path"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    4096,
			Workers:         2,
			RequestTimeout:  60,
			ShutdownTimeout: 30,
		},
		TTS: TTSConfig{
			CLIPath:      "",
			VoicePrompt:  "",
			Exaggeration: 0.5,
			CFGWeight:    0.2,
			Temperature:  0.8,
		},
		Text: TextConfig{
			ExpandAbbreviations: true,
			Segment:             false,
			SegmenterPath:       "",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent synthesis subprocesses")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request synthesis deadline in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
	fs.String("tts-cli-path", defaults.TTS.CLIPath, "Path to the synthesis engine executable")
	fs.String("tts-voice-prompt", defaults.TTS.VoicePrompt, "Path to the reference voice WAV sample")
	fs.Float64("tts-exaggeration", defaults.TTS.Exaggeration, "Emotion/expressiveness scalar in [0,1]")
	fs.Float64("tts-cfg-weight", defaults.TTS.CFGWeight, "Classifier-free guidance weight (0.1-0.3 recommended, 0 disallowed)")
	fs.Float64("tts-temperature", defaults.TTS.Temperature, "Sampling temperature")
	fs.Bool("text-expand-abbreviations", defaults.Text.ExpandAbbreviations, "Expand known Vietnamese abbreviations")
	fs.Bool("text-segment", defaults.Text.Segment, "Run word segmentation before synthesis when available")
	fs.String("text-segmenter-path", defaults.Text.SegmenterPath, "Path to the word-segmenter executable")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("VIETTTS")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("viettts")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("tts.cli_path", c.TTS.CLIPath)
	v.SetDefault("tts.voice_prompt", c.TTS.VoicePrompt)
	v.SetDefault("tts.exaggeration", c.TTS.Exaggeration)
	v.SetDefault("tts.cfg_weight", c.TTS.CFGWeight)
	v.SetDefault("tts.temperature", c.TTS.Temperature)
	v.SetDefault("text.expand_abbreviations", c.Text.ExpandAbbreviations)
	v.SetDefault("text.segment", c.Text.Segment)
	v.SetDefault("text.segmenter_path", c.Text.SegmenterPath)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.workers", "server-workers")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
	v.RegisterAlias("tts.cli_path", "tts-cli-path")
	v.RegisterAlias("tts.voice_prompt", "tts-voice-prompt")
	v.RegisterAlias("tts.exaggeration", "tts-exaggeration")
	v.RegisterAlias("tts.cfg_weight", "tts-cfg-weight")
	v.RegisterAlias("tts.temperature", "tts-temperature")
	v.RegisterAlias("text.expand_abbreviations", "text-expand-abbreviations")
	v.RegisterAlias("text.segment", "text-segment")
	v.RegisterAlias("text.segmenter_path", "text-segmenter-path")
}
