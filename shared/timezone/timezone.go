package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata" // embedded IANA database, resolution must not depend on the host
	"tzdate/shared/constant"
)

var defaultZones = NewIANAZones()

// Provider is a configured date/time interface. It is immutable once built
// and may be shared between goroutines.
type Provider struct {
	zone     string
	location *time.Location
	clock    Clock
	utc      UTC
	zones    Zones
}

type options struct {
	zone  string
	clock Clock
	utc   UTC
	zones Zones
}

type Option func(*options)

// WithDefault sets the zone applied when a caller does not name one.
func WithDefault(zone string) Option {
	return func(o *options) {
		o.zone = zone
	}
}

func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithUTC(utc UTC) Option {
	return func(o *options) {
		o.utc = utc
	}
}

func WithZones(zones Zones) Option {
	return func(o *options) {
		o.zones = zones
	}
}

// New composes a Provider from its capabilities. The default zone is resolved
// eagerly, an unknown identifier yields a *ConfigError.
func New(opts ...Option) (*Provider, error) {
	o := options{
		zone:  constant.TimezoneUTC,
		clock: SystemClock{},
		utc:   NewUTC(),
		zones: defaultZones,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.clock == nil || o.utc == nil || o.zones == nil {
		return nil, newConfigError(o.zone, errNilCapability)
	}

	loc, err := o.zones.Resolve(o.zone)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &Provider{
		zone:     loc.String(),
		location: loc,
		clock:    o.clock,
		utc:      o.utc,
		zones:    o.zones,
	}, nil
}

// Zone returns the default zone identifier.
func (p *Provider) Zone() string {
	return p.zone
}

func (p *Provider) Location() *time.Location {
	return p.location
}

// Resolve looks a zone up with the provider's Zones capability.
func (p *Provider) Resolve(zone string) (*time.Location, error) {
	return p.zones.Resolve(zone) //nolint:wrapcheck
}

// Now returns the current time in the default zone.
func (p *Provider) Now() time.Time {
	return p.clock.Now().In(p.location)
}

// NowIn returns the current time in zone; the default zone is not consulted.
func (p *Provider) NowIn(zone string) (time.Time, error) {
	return p.In(p.clock.Now(), zone)
}

func (p *Provider) NowUTC() time.Time {
	return p.utc.In(p.clock.Now())
}

// Date builds a time from wall-clock fields interpreted in the default zone.
func (p *Provider) Date(year int, month time.Month, day, hour, minute, sec, nsec int) time.Time {
	return time.Date(year, month, day, hour, minute, sec, nsec, p.location)
}

// In converts t to zone.
func (p *Provider) In(t time.Time, zone string) (time.Time, error) {
	loc, err := p.zones.Resolve(zone)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t.In(loc), nil
}

// ToDefault converts t to the default zone.
func (p *Provider) ToDefault(t time.Time) time.Time {
	return t.In(p.location)
}

func (p *Provider) UTC(t time.Time) time.Time {
	return p.utc.In(t)
}

// Parse parses value in the default zone. An offset present in value wins.
func (p *Provider) Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q in %s: %w", value, p.zone, err)
	}

	return t, nil
}

// ParseIn parses value in zone.
func (p *Provider) ParseIn(layout, value, zone string) (time.Time, error) {
	loc, err := p.zones.Resolve(zone)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q in %s: %w", value, zone, err)
	}

	return t, nil
}

func (p *Provider) ParseUTC(layout, value string) (time.Time, error) {
	t, err := p.utc.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q in UTC: %w", value, err)
	}

	return t, nil
}

// Format formats t in the default zone.
func (p *Provider) Format(t time.Time, layout string) string {
	return p.ToDefault(t).Format(layout)
}

// Offset returns the UTC offset of t in the default zone, e.g. "+01:00".
func (p *Provider) Offset(t time.Time) string {
	_, seconds := p.ToDefault(t).Zone()

	return FormatOffset(seconds)
}

// Instant describes a moment as seen from one zone.
type Instant struct {
	Time          time.Time
	Zone          string
	Abbreviation  string
	Offset        string
	OffsetSeconds int
	DST           bool
}

// Describe reports t in the default zone.
func (p *Provider) Describe(t time.Time) Instant {
	return describe(p.ToDefault(t), p.zone)
}

// DescribeIn reports t in zone.
// The zone label is the resolved location name, not the caller's spelling.
func (p *Provider) DescribeIn(t time.Time, zone string) (Instant, error) {
	loc, err := p.zones.Resolve(zone)
	if err != nil {
		return Instant{}, err //nolint:wrapcheck
	}

	return describe(t.In(loc), loc.String()), nil
}

func describe(t time.Time, zone string) Instant {
	abbr, seconds := t.Zone()

	return Instant{
		Time:          t,
		Zone:          zone,
		Abbreviation:  abbr,
		Offset:        FormatOffset(seconds),
		OffsetSeconds: seconds,
		DST:           t.IsDST(),
	}
}

// FormatOffset renders an offset in seconds east of UTC as ±HH:MM.
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}

	minutes := seconds / 60

	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

// Valid reports whether zone is an identifier the IANA resolver accepts.
func Valid(zone string) bool {
	_, err := defaultZones.Resolve(zone)

	return err == nil
}
