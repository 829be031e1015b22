// Package timezone interprets all wall-clock comparisons in the fixed
// establishment timezone.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in the establishment timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to the establishment timezone
//
//  2. Resolving an instant into date/clock components:
//     day := timezone.Today(time.Now())   // "2024-06-01"
//     hhmm := timezone.Clock(time.Now())  // "14:05"
//
//  3. Parsing times in the establishment timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/Cancun", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
