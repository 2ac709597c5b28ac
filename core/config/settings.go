// File: settings.go
// Title: Typed Application Settings
// Description: Binds configuration values into the typed Settings used by the
//              textkit CLI and validates them with struct tags.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.2.0: Initial implementation replacing rule maps

package config

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	tkerrors "github.com/msto63/textkit/core/errors"
)

// Settings holds every tunable value of the toolkit
type Settings struct {
	Convert ConvertSettings `toml:"convert"`
	Phone   PhoneSettings   `toml:"phone"`
	JSON    JSONSettings    `toml:"json"`
	Format  FormatSettings  `toml:"format"`
	Log     LogSettings     `toml:"log"`
}

// ConvertSettings configures the lenient converter
type ConvertSettings struct {
	WhitespaceAsAbsent bool `toml:"whitespace_as_absent"`
}

// PhoneSettings bounds the accepted phone number length. Zero means unbounded.
type PhoneSettings struct {
	MinLength int `toml:"min_length" validate:"gte=0"`
	MaxLength int `toml:"max_length" validate:"omitempty,gte=0,gtefield=MinLength"`
}

// JSONSettings configures JSON validation limits and output indentation
type JSONSettings struct {
	MaxBytes int    `toml:"max_bytes" validate:"gte=2"`
	MaxDepth int    `toml:"max_depth" validate:"gte=1,lte=10000"`
	Indent   string `toml:"indent" validate:"max=8,indent"`
}

// FormatSettings configures date rendering
type FormatSettings struct {
	Locale string `toml:"locale" validate:"locale"`
}

// LogSettings configures the CLI logger
type LogSettings struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `toml:"format" validate:"oneof=json text logfmt"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Convert: ConvertSettings{WhitespaceAsAbsent: true},
		JSON: JSONSettings{
			MaxBytes: 1 << 20,
			MaxDepth: 512,
			Indent:   "  ",
		},
		Format: FormatSettings{Locale: "invariant"},
		Log:    LogSettings{Level: "warn", Format: "text"},
	}
}

// Settings reads the typed settings from the configuration. Keys missing from
// both the file and the environment keep their defaults.
func (c *Config) Settings() Settings {
	d := DefaultSettings()
	return Settings{
		Convert: ConvertSettings{
			WhitespaceAsAbsent: c.GetBool("convert.whitespace_as_absent", d.Convert.WhitespaceAsAbsent),
		},
		Phone: PhoneSettings{
			MinLength: c.GetInt("phone.min_length", d.Phone.MinLength),
			MaxLength: c.GetInt("phone.max_length", d.Phone.MaxLength),
		},
		JSON: JSONSettings{
			MaxBytes: c.GetInt("json.max_bytes", d.JSON.MaxBytes),
			MaxDepth: c.GetInt("json.max_depth", d.JSON.MaxDepth),
			Indent:   c.GetString("json.indent", d.JSON.Indent),
		},
		Format: FormatSettings{
			Locale: c.GetString("format.locale", d.Format.Locale),
		},
		Log: LogSettings{
			Level:  strings.ToLower(c.GetString("log.level", d.Log.Level)),
			Format: strings.ToLower(c.GetString("log.format", d.Log.Format)),
		},
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			return strings.SplitN(field.Tag.Get("toml"), ",", 2)[0]
		})
		// Registration only fails for empty tags or nil functions
		_ = validate.RegisterValidation("locale", validateLocale)
		_ = validate.RegisterValidation("indent", validateIndent)
	})
	return validate
}

func validateLocale(fl validator.FieldLevel) bool {
	locale := strings.TrimSpace(fl.Field().String())
	if locale == "" || strings.EqualFold(locale, "invariant") {
		return true
	}
	_, err := language.Parse(locale)
	return err == nil
}

func validateIndent(fl validator.FieldLevel) bool {
	return strings.Trim(fl.Field().String(), " \t") == ""
}

// Validate checks the settings and reports the first invalid key as an
// INVALID_CONFIG error
func (s Settings) Validate() error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		key := strings.TrimPrefix(fe.Namespace(), "Settings.")
		reason := "failed '" + fe.Tag() + "'"
		if fe.Param() != "" {
			reason += " (" + fe.Param() + ")"
		}
		return tkerrors.ConfigInvalid(key, fe.Value(), reason)
	}
	return tkerrors.OperationFailed(tkerrors.ModuleConfig, "validate", err)
}

// LoadSettings loads .env, then the given configuration file (or the
// discovered one when path is empty), and returns validated settings
func LoadSettings(path string) (Settings, *Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Settings{}, nil, err
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
	} else {
		cfg, err = Discover(DefaultDiscoveryOptions())
	}
	if err != nil {
		return Settings{}, nil, err
	}

	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		return Settings{}, cfg, err
	}
	return settings, cfg, nil
}
