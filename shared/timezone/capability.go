package timezone

import (
	"strings"
	"sync"
	"time"
	"tzdate/shared/constant"
)

// Clock is the source of the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// UTC is the capability of constructing and converting values in UTC.
type UTC interface {
	In(t time.Time) time.Time
	Parse(layout, value string) (time.Time, error)
}

// Zones is the capability of resolving IANA identifiers to locations.
type Zones interface {
	Resolve(name string) (*time.Location, error)
}

type utcCapability struct{}

// NewUTC returns the UTC capability backed by the time package.
func NewUTC() UTC {
	return utcCapability{}
}

func (utcCapability) In(t time.Time) time.Time {
	return t.UTC()
}

func (utcCapability) Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t.UTC(), nil
}

type ianaZones struct {
	locations sync.Map
}

// NewIANAZones returns a Zones resolving names against the embedded IANA
// database. Resolved locations are cached; the value is safe for concurrent use.
func NewIANAZones() Zones {
	return &ianaZones{}
}

func (z *ianaZones) Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)

	if cached, ok := z.locations.Load(name); ok {
		return cached.(*time.Location), nil //nolint:forcetypeassert
	}

	switch name {
	case constant.Empty:
		return nil, newConfigError(name, errEmptyZone)
	case constant.TimezoneLocal:
		return nil, newConfigError(name, errLocalZone)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, newConfigError(name, err)
	}

	z.locations.Store(name, loc)

	return loc, nil
}
