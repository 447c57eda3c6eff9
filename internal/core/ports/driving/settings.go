package driving

import "github.com/custodia-labs/pwc-mcp/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its config key (e.g. "api.base_url").
	Set(key, value string) error

	// Keys returns the recognised config keys.
	Keys() []string

	// Values returns the effective settings rendered as text, keyed by
	// config key.
	Values() (map[string]string, error)

	// Validate checks that current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the location of the backing config file.
	Path() string
}
