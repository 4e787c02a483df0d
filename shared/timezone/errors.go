package timezone

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration matches every ConfigError through errors.Is.
	ErrConfiguration = errors.New("timezone configuration error")

	// ErrAlreadyInitialized is returned when the process-wide default is asked to change.
	ErrAlreadyInitialized = errors.New("timezone: default already initialized with a different zone")

	errEmptyZone     = errors.New("empty timezone identifier")
	errLocalZone     = errors.New("host local timezone is not accepted, use an IANA name")
	errNilCapability = errors.New("nil capability")
)

// ConfigError reports a timezone identifier that cannot be used.
type ConfigError struct {
	Zone string
	Err  error
}

func newConfigError(zone string, err error) *ConfigError {
	return &ConfigError{Zone: zone, Err: errors.WithStack(err)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid timezone %q: %v", e.Zone, errors.Cause(e.Err))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
