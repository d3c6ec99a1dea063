package socialverse

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// maxConfigBytes bounds the size of a config file read by LoadConfig.
const maxConfigBytes = 1 << 20

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("metricname", func(fl validator.FieldLevel) bool {
		return metricNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// Config controls a Session.
type Config struct {
	// LogLevel is the minimum level the CLI logger emits.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`

	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string `yaml:"metrics_namespace" validate:"required,max=64,metricname"`

	// MaxPostLength is the longest accepted post, in runes.
	MaxPostLength int `yaml:"max_post_length" validate:"min=1"`

	// RecordActivity makes session mutations push Activity records.
	RecordActivity bool `yaml:"record_activity"`

	// NotifyFriends makes AddFriendship enqueue a notification for the second user.
	NotifyFriends bool `yaml:"notify_friends"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "info",
		MetricsNamespace: "socialverse",
		MaxPostLength:    280,
		RecordActivity:   true,
		NotifyFriends:    true,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if info.Size() > maxConfigBytes {
		return cfg, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), maxConfigBytes)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field against its constraints.
// All violations are reported in one error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Level returns LogLevel as a zap level. Invalid levels fall back to info.
func (c Config) Level() zap.AtomicLevel {
	lvl, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return lvl
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "metricname":
		return fmt.Sprintf("%s must match %s", field, metricNamePattern)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
