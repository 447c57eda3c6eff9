package services

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL        = "api.base_url"
	KeyAPITimeout        = "api.timeout"
	KeyDocumentTimeout   = "document.timeout"
	KeyDocumentUserAgent = "document.user_agent"
	KeyDocumentMaxBytes  = "document.max_bytes"
	KeyServerAddr        = "server.addr"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or malformed values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL: s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout: s.getDuration(KeyAPITimeout, defaults.API.Timeout),
		},
		Document: domain.DocumentSettings{
			Timeout:   s.getDuration(KeyDocumentTimeout, defaults.Document.Timeout),
			UserAgent: s.getString(KeyDocumentUserAgent, defaults.Document.UserAgent),
			MaxBytes:  int64(s.getInt(KeyDocumentMaxBytes, int(defaults.Document.MaxBytes))),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(KeyServerAddr, defaults.Server.Addr),
		},
		Log: domain.LogSettings{
			Level:  s.getString(KeyLogLevel, defaults.Log.Level),
			Format: s.getLogFormat(defaults.Log.Format),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyAPIBaseURL, settings.API.BaseURL},
		{KeyAPITimeout, settings.API.Timeout.String()},
		{KeyDocumentTimeout, settings.Document.Timeout.String()},
		{KeyDocumentUserAgent, settings.Document.UserAgent},
		{KeyDocumentMaxBytes, settings.Document.MaxBytes},
		{KeyServerAddr, settings.Server.Addr},
		{KeyLogLevel, settings.Log.Level},
		{KeyLogFormat, settings.Log.Format.String()},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for the given key and stores it.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case KeyAPIBaseURL:
		if err := validateBaseURL(value); err != nil {
			return err
		}
		stored = strings.TrimRight(value, "/")
	case KeyAPITimeout, KeyDocumentTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = d.String()
	case KeyDocumentMaxBytes:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = n
	case KeyLogLevel:
		if _, err := zerolog.ParseLevel(value); err != nil || value == "" {
			return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidInput, value)
		}
		stored = value
	case KeyLogFormat:
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("%w: unknown log format %q", domain.ErrInvalidInput, value)
		}
		stored = value
	case KeyDocumentUserAgent, KeyServerAddr:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	default:
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised config keys.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyAPIBaseURL,
		KeyAPITimeout,
		KeyDocumentTimeout,
		KeyDocumentUserAgent,
		KeyDocumentMaxBytes,
		KeyServerAddr,
		KeyLogLevel,
		KeyLogFormat,
	}
}

// Values returns the effective settings rendered as text, keyed by config key.
func (s *SettingsService) Values() (map[string]string, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		KeyAPIBaseURL:        settings.API.BaseURL,
		KeyAPITimeout:        settings.API.Timeout.String(),
		KeyDocumentTimeout:   settings.Document.Timeout.String(),
		KeyDocumentUserAgent: settings.Document.UserAgent,
		KeyDocumentMaxBytes:  strconv.FormatInt(settings.Document.MaxBytes, 10),
		KeyServerAddr:        settings.Server.Addr,
		KeyLogLevel:          settings.Log.Level,
		KeyLogFormat:         settings.Log.Format.String(),
	}, nil
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var errs []error
	if err := validateBaseURL(settings.API.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(settings.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidInput, settings.Log.Level))
	}
	return errors.Join(errs...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the location of the backing config file.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL must be an absolute http(s) URL, got %q", domain.ErrInvalidInput, raw)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getLogFormat(defaultVal domain.LogFormat) domain.LogFormat {
	format := domain.LogFormat(s.configStore.GetString(KeyLogFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
