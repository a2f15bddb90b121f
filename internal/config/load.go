package config

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"github.com/security-e/security-e.github.io/internal/foundation/errors"
	"github.com/security-e/security-e.github.io/internal/logfields"
)

// DefaultOverridesFile is the overrides file looked up when none is given.
const DefaultOverridesFile = "siteconfig.yaml"

// Load evaluates the site record: the declared values for clock's current
// year, the overrides file at path (skipped when path is empty), then the
// normalize, defaults and validate passes. A nil logger uses slog.Default.
func Load(path string, clock clockwork.Clock, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := loadEnvFile(logger); err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not load env file", logfields.Error(err))
	}

	now := clock.Now()
	cfg := SecurityE(now)
	if path != "" {
		if err := applyOverrides(cfg, path, logger); err != nil {
			return nil, err
		}
	}
	cfg.ThemeConfig.Footer.Copyright = ExpandYear(cfg.ThemeConfig.Footer.Copyright, now.Year())

	if _, err := Finalize(cfg, logger); err != nil {
		return nil, err
	}
	logger.Debug("Evaluated site record", logfields.Year(now.Year()), logfields.Locale(cfg.I18n.DefaultLocale))
	return cfg, nil
}

// Finalize runs normalization, defaults and validation on cfg in place.
// Normalization warnings are logged and returned.
func Finalize(cfg *Config, logger *slog.Logger) (*NormalizationResult, error) {
	if cfg == nil {
		return nil, errors.InternalError("finalize called without a configuration").Build()
	}
	if logger == nil {
		logger = slog.Default()
	}
	res, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "normalize configuration").Build()
	}
	for _, w := range res.Warnings {
		logger.Warn("Configuration normalized", logfields.Warning(w))
	}
	if err := NewDefaultApplier().ApplyDefaults(cfg); err != nil {
		return res, errors.WrapError(err, errors.CategoryConfig, "apply defaults").Fatal().Build()
	}
	if err := ValidateConfig(cfg); err != nil {
		return res, err
	}
	return res, nil
}

// envRefRE matches the braced ${VAR} form. Bare $ text is left as written.
var envRefRE = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvRefs replaces ${VAR} with the variable's value; unset variables
// expand to the empty string.
func expandEnvRefs(s string) string {
	return envRefRE.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(ref[2 : len(ref)-1])
	})
}

// applyOverrides decodes the YAML file at path on top of cfg. Scalars and
// nested structs merge field by field; lists replace the declared list.
func applyOverrides(cfg *Config, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return errors.NotFoundError(fmt.Sprintf("configuration file not found: %s", path)).
				WithContext("path", path).Build()
		}
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).Build()
	}

	dec := yaml.NewDecoder(strings.NewReader(expandEnvRefs(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if stdErrors.Is(err, io.EOF) {
			return nil
		}
		return errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
			WithContext("path", path).Build()
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !stdErrors.Is(err, io.EOF) {
		return errors.ConfigError("config file must contain a single YAML document").
			WithContext("path", path).Build()
	}
	logger.Debug("Applied configuration overrides", logfields.Path(path))
	return nil
}

// Init writes an example overrides file mirroring the declared record.
func Init(path string, force bool, clock clockwork.Clock) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.AlreadyExistsError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).Build()
	}

	example := SecurityE(clock.Now())
	example.ThemeConfig.Footer.Copyright = fmt.Sprintf("Copyright © %s %s. Built with Docusaurus.", YearPlaceholder, siteTitle)
	lcs, err := DescribeLocales(example.I18n.Locales)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "describe locales").Build()
	}
	example.I18n.LocaleConfigs = lcs

	var buf bytes.Buffer
	buf.WriteString("# Overrides for the Security E site record.\n")
	buf.WriteString("# Lists replace the declared lists; ${VAR} and {year} are expanded.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(example); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := enc.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create config directory").
				WithContext("path", dir).Build()
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).Build()
	}
	return nil
}
