// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Application zone, set once at startup:
//     timezone.Init(cfg.App.Timezone)
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//     label := timezone.Format(someTime, "3:04 PM")
//
//  2. Detecting the environment zone:
//     name := timezone.LocalTimezone()         // TZ, then /etc/localtime, then /etc/timezone, else "UTC"
//
//  3. Persisted user preference:
//     pref := timezone.NewPreference(store, timezone.NewDetector(""))
//     stored, err := pref.For(deviceID).Set(ctx, "America/New_York")
//     name := pref.For(deviceID).Get(ctx)      // never empty, never "undefined"
//
//  4. Display formatting with dayjs-style patterns:
//     f := timezone.NewFormatter(pref, clock.New())
//     f.For(deviceID).Format(ctx, "2024-01-15T10:30:00Z", "") // "Jan 15, 2024 05:30 AM"
//     timezone.FormatPattern(t, "ddd, D MMMM YYYY [at] HH:mm")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The IANA database is embedded, so zone names resolve even on hosts without tzdata.
package timezone
