package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"cmodel/model"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	DefaultFormatConfig struct {
		FontFamily string `yaml:"font_family"`
		FontSize   string `yaml:"font_size"`
		TextColor  string `yaml:"text_color"`
	}

	ConversionConfig struct {
		RootSelector      string              `yaml:"root_selector"`
		Caret             string              `yaml:"caret" validate:"required"`
		ZoomScale         float64             `yaml:"zoom_scale" validate:"gt=0"`
		AllowCacheElement bool                `yaml:"allow_cache_element"`
		DisabledTags      []string            `yaml:"disabled_tags" validate:"dive,required"`
		DefaultFormat     DefaultFormatConfig `yaml:"default_format"`
	}

	EditingConfig struct {
		KeepEntities bool `yaml:"keep_entities"`
		Normalize    bool `yaml:"normalize"`
	}

	OutputConfig struct {
		Format                OutputFmt `yaml:"format"`
		Pretty                bool      `yaml:"pretty"`
		Overwrite             bool      `yaml:"overwrite"`
		NameTemplate          string    `yaml:"name_template" validate:"required"`
		FileNameTransliterate bool      `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Conversion ConversionConfig `yaml:"conversion"`
		Editing    EditingConfig    `yaml:"editing"`
		Output     OutputConfig     `yaml:"output"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, expanded per converted file
	// rather than when configuration is loaded
	NameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

// SegmentFormat returns configured default format of produced documents.
func (c *DefaultFormatConfig) SegmentFormat() model.SegmentFormat {
	var f model.SegmentFormat
	f.FontFamily = c.FontFamily
	f.FontSize = c.FontSize
	f.TextColor = c.TextColor
	return f
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
