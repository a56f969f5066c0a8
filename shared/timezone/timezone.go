package timezone

import (
	"os"
	"path/filepath"
	"pakt/config"
	"pakt/shared/constant"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

const zoneinfoDir = "zoneinfo/"

var (
	appLocation *time.Location

	// Host files consulted when TZ is unset. Go names such a zone "Local", so the IANA
	// name has to be read back from the system configuration.
	localtimePath    = "/etc/localtime"
	timezoneFilePath = "/etc/timezone"
)

// Init sets the application timezone. An empty name uses the detected environment zone.
func Init(name string) *time.Location {
	if name == "" {
		name = LocalTimezone()
		log.Warn().Str("timezone", name).Msg("No timezone configured, using the detected environment timezone")
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return appLocation
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return appLocation
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Detector resolves the timezone of the environment the caller runs in.
type Detector interface {
	Detect() string
}

type detector struct {
	configured string
}

// NewDetector returns a Detector that prefers configured when it names a loadable zone.
func NewDetector(configured string) Detector {
	return detector{configured: configured}
}

func (d detector) Detect() string {
	candidates := []func() string{
		func() string { return d.configured },
		zoneFromEnv,
		zoneFromLocaltime,
		zoneFromFile,
	}

	for _, candidate := range candidates {
		if name := candidate(); Valid(name) {
			return name
		}
	}

	return constant.DefaultTimezone
}

// LocalTimezone returns the environment's IANA zone name, or "UTC" when it cannot be resolved.
func LocalTimezone() string {
	return detector{}.Detect()
}

// Valid reports whether name is a usable IANA zone name.
func Valid(name string) bool {
	if name == "" || name == "Local" || name == constant.UndefinedValue {
		return false
	}

	_, err := time.LoadLocation(name)

	return err == nil
}

func zoneFromEnv() string {
	return trimZoneinfo(strings.TrimPrefix(os.Getenv("TZ"), ":"))
}

// zoneFromLocaltime follows the /etc/localtime symlink into the zoneinfo tree.
func zoneFromLocaltime() string {
	target, err := filepath.EvalSymlinks(localtimePath)
	if err != nil || !strings.Contains(target, zoneinfoDir) {
		return ""
	}

	return trimZoneinfo(target)
}

// zoneFromFile reads the Debian style /etc/timezone.
func zoneFromFile() string {
	raw, err := os.ReadFile(timezoneFilePath)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(raw))
}

func trimZoneinfo(path string) string {
	if idx := strings.LastIndex(path, zoneinfoDir); idx >= 0 {
		return path[idx+len(zoneinfoDir):]
	}

	return path
}

// DetectorFromConfig prefers APP_TIMEZONE when it names a loadable zone.
func DetectorFromConfig(cfg *config.Config) Detector {
	return NewDetector(cfg.App.Timezone)
}
