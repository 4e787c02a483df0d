package timezone

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"tzdate/config"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.Mutex
	appProvider *Provider
)

// Initialize builds the process-wide provider from cfg. An empty zone is a
// *ConfigError like any other unusable identifier. Calling it again with
// the same zone returns the existing provider; a different zone is refused
// with ErrAlreadyInitialized and the existing default stays in place.
func Initialize(cfg *config.Config) (*Provider, error) {
	zone := strings.TrimSpace(cfg.App.Timezone)

	mu.Lock()
	defer mu.Unlock()

	if appProvider != nil {
		if appProvider.zone == zone {
			return appProvider, nil
		}

		return appProvider, fmt.Errorf("%w: have %q, requested %q", ErrAlreadyInitialized, appProvider.zone, zone)
	}

	provider, err := New(WithDefault(zone))
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone. Please use standard timezone names like 'Europe/Rome', 'UTC', 'America/New_York'")

		return nil, err
	}

	appProvider = provider

	log.Info().
		Str("timezone", zone).
		Str("location", provider.location.String()).
		Msg("Application timezone initialized")

	return provider, nil
}

// Get returns the process-wide provider, initializing it from config.Get on
// first access. An unusable timezone terminates the process.
func Get() *Provider {
	mu.Lock()
	provider := appProvider
	mu.Unlock()

	if provider != nil {
		return provider
	}

	provider, err := Initialize(config.Get())
	if err != nil && !errors.Is(err, ErrAlreadyInitialized) {
		log.Fatal().Err(err).Msg("Failed to initialize application timezone")
	}

	return provider
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return Get().Now()
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return Get().ToDefault(t)
}

// GetLocation returns the application timezone location
func GetLocation() *time.Location {
	return Get().Location()
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return Get().Parse(layout, value)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return Get().Format(t, layout)
}
