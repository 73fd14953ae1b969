package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/kubadict/internal/entry"
	"github.com/at-ishikawa/kubadict/internal/segmenter"
)

type Config struct {
	Source     SourceConfig     `mapstructure:"source"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Senses     SensesConfig     `mapstructure:"senses"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

// SourceConfig points at the dictionary document, a local file or an http(s) URL.
type SourceConfig struct {
	Path          string `mapstructure:"path" validate:"required"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"min=1"`
}

type ExtractionConfig struct {
	Anchors          []string `mapstructure:"anchors" validate:"min=1,dive,required"`
	EditorialMarkers []string `mapstructure:"editorial_markers" validate:"dive,required"`
	TrailingMarkers  []string `mapstructure:"trailing_markers" validate:"dive,required"`
	AltFormWindow    int      `mapstructure:"alt_form_window" validate:"min=1"`
}

type SensesConfig struct {
	// OverridesFile replaces the built-in override table when set
	OverridesFile string `mapstructure:"overrides_file" validate:"omitempty,file"`
}

type OutputsConfig struct {
	CSVFile       string `mapstructure:"csv_file" validate:"required"`
	YAMLDirectory string `mapstructure:"yaml_directory" validate:"required"`
	MarkdownFile  string `mapstructure:"markdown_file" validate:"required"`
	// PDFFont is a TrueType font for the PDF export; the embedded Go Regular is used when empty
	PDFFont string `mapstructure:"pdf_font" validate:"omitempty,file"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	// Path is the database file of the sqlite driver
	Path            string            `mapstructure:"path"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kubadict")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	rules := segmenter.DefaultRules()
	v.SetDefault("source.path", "kubachi-russian.docx")
	v.SetDefault("source.retry_attempts", 3)
	v.SetDefault("extraction.anchors", rules.Anchors)
	v.SetDefault("extraction.editorial_markers", rules.EditorialMarkers)
	v.SetDefault("extraction.trailing_markers", rules.TrailingMarkers)
	v.SetDefault("extraction.alt_form_window", entry.DefaultAltFormWindow)
	// An empty overrides file uses the table embedded in the binary
	v.SetDefault("senses.overrides_file", "")
	v.SetDefault("outputs.csv_file", filepath.Join("outputs", "lexicon_entries.csv"))
	v.SetDefault("outputs.yaml_directory", "outputs")
	v.SetDefault("outputs.markdown_file", filepath.Join("outputs", "lexicon.md"))
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "kubadict.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "kubadict")
	v.SetDefault("database.username", "user")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Rules are the segmentation rules configured for the source.
func (c ExtractionConfig) Rules() segmenter.Rules {
	return segmenter.Rules{
		Anchors:          c.Anchors,
		EditorialMarkers: c.EditorialMarkers,
		TrailingMarkers:  c.TrailingMarkers,
	}
}
