// Package timezone provides the application's date provider: a value that
// knows the configured default timezone and carries the UTC and IANA
// conversion capabilities it was built with.
//
// Usage Examples:
//
//  1. Building a provider explicitly (preferred, inject it where needed):
//     p, err := timezone.New(timezone.WithDefault("Europe/Rome"))
//     now := p.Now()                          // current time in Europe/Rome
//     ny, err := p.NowIn("America/New_York")  // explicit zone, default ignored
//
//  2. Process-wide provider initialized from configuration:
//     p, err := timezone.Initialize(config.Get()) // fail fast on a bad APP_TIMEZONE
//     p = timezone.Get()                          // same provider afterwards
//
//  3. Package helpers for call sites without a provider:
//     now := timezone.Now()
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Supported timezone formats:
// - Standard IANA names only: "UTC", "Europe/Rome", "America/New_York", "Asia/Jakarta".
// - "Local" is rejected, the host timezone is not a stable default.
//
// The IANA database is embedded in the binary, so resolution does not depend
// on the host's zoneinfo files.
package timezone
