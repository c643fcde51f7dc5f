package config

import (
	core_config "github.com/grovetools/core/config"
)

//go:generate go run ../tools/schema-generator

// ExtensionName is the key of the meetlogs section in grove.yml.
const ExtensionName = "meetlogs"

// TranscriptConfig defines settings for transcript viewing.
type TranscriptConfig struct {
	// DetailLevel controls the verbosity of transcript output.
	// "summary" (default): Each segment is collapsed to one shortened line.
	// "full": Segment text is shown unchanged.
	DetailLevel string `yaml:"detail_level,omitempty" jsonschema:"enum=summary,enum=full"`

	// ShowTimestamps prefixes segments with their start offset when known.
	ShowTimestamps *bool `yaml:"show_timestamps,omitempty"`

	// MaxSegments is the number of segments shown by tail.
	// 0 (default): 10 segments.
	MaxSegments int `yaml:"max_segments,omitempty"`
}

// IngestConfig defines how transcript files are read.
type IngestConfig struct {
	// MaxBytes refuses files larger than this. 0 (default): 20 MiB.
	MaxBytes int64 `yaml:"max_bytes,omitempty"`

	// Extensions are the file extensions treated as transcripts by list and watch.
	Extensions []string `yaml:"extensions,omitempty"`
}

// WatchConfig defines directory monitoring settings.
type WatchConfig struct {
	// IntervalSeconds between directory polls. 0 (default): 5 seconds.
	IntervalSeconds int `yaml:"interval_seconds,omitempty"`
}

// Config is the top-level configuration structure for meetlogs.
type Config struct {
	Transcript TranscriptConfig `yaml:"transcript,omitempty"`
	Ingest     IngestConfig     `yaml:"ingest,omitempty"`
	Watch      WatchConfig      `yaml:"watch,omitempty"`
}

// Default returns the configuration used when grove.yml has no meetlogs section.
func Default() Config {
	showTimestamps := true
	return Config{
		Transcript: TranscriptConfig{
			DetailLevel:    "summary",
			ShowTimestamps: &showTimestamps,
			MaxSegments:    10,
		},
		Ingest: IngestConfig{
			MaxBytes:   20 << 20,
			Extensions: []string{".vtt", ".txt", ".json", ".md"},
		},
		Watch: WatchConfig{
			IntervalSeconds: 5,
		},
	}
}

// Load reads the meetlogs extension from the default grove configuration.
// Missing configuration or unset fields fall back to Default.
func Load() Config {
	var cfg Config
	coreCfg, err := core_config.LoadDefault()
	if err == nil {
		if err := coreCfg.UnmarshalExtension(ExtensionName, &cfg); err != nil {
			cfg = Config{}
		}
	}
	return cfg.WithDefaults()
}

// WithDefaults fills unset fields from Default.
func (c Config) WithDefaults() Config {
	def := Default()
	if c.Transcript.DetailLevel == "" {
		c.Transcript.DetailLevel = def.Transcript.DetailLevel
	}
	if c.Transcript.ShowTimestamps == nil {
		c.Transcript.ShowTimestamps = def.Transcript.ShowTimestamps
	}
	if c.Transcript.MaxSegments <= 0 {
		c.Transcript.MaxSegments = def.Transcript.MaxSegments
	}
	if c.Ingest.MaxBytes <= 0 {
		c.Ingest.MaxBytes = def.Ingest.MaxBytes
	}
	if len(c.Ingest.Extensions) == 0 {
		c.Ingest.Extensions = def.Ingest.Extensions
	}
	if c.Watch.IntervalSeconds <= 0 {
		c.Watch.IntervalSeconds = def.Watch.IntervalSeconds
	}
	return c
}
