package timezone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHostFiles(t *testing.T, localtime, timezoneFile string) {
	t.Helper()

	prevLocaltime, prevTimezoneFile := localtimePath, timezoneFilePath
	localtimePath, timezoneFilePath = localtime, timezoneFile

	t.Cleanup(func() {
		localtimePath, timezoneFilePath = prevLocaltime, prevTimezoneFile
	})
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDetect_HostFiles(t *testing.T) {
	dir := t.TempDir()

	zone := writeFile(t, filepath.Join(dir, "usr", "share", "zoneinfo", "Africa", "Lagos"), "TZif2")
	symlink := filepath.Join(dir, "etc", "localtime")
	require.NoError(t, os.MkdirAll(filepath.Dir(symlink), 0o755))
	require.NoError(t, os.Symlink(zone, symlink))

	copied := writeFile(t, filepath.Join(dir, "etc", "localtime-copy"), "TZif2")
	debian := writeFile(t, filepath.Join(dir, "etc", "timezone"), "Asia/Kolkata\n")
	garbage := writeFile(t, filepath.Join(dir, "etc", "timezone-garbage"), "Local\n")
	missing := filepath.Join(dir, "etc", "missing")

	tests := []struct {
		name         string
		configured   string
		localtime    string
		timezoneFile string
		expected     string
	}{
		{
			name:         "localtime symlink names the zone",
			localtime:    symlink,
			timezoneFile: debian,
			expected:     "Africa/Lagos",
		},
		{
			name:         "copied localtime falls through to the timezone file",
			localtime:    copied,
			timezoneFile: debian,
			expected:     "Asia/Kolkata",
		},
		{
			name:         "configured zone still wins",
			configured:   "America/Chicago",
			localtime:    symlink,
			timezoneFile: debian,
			expected:     "America/Chicago",
		},
		{
			name:         "unusable timezone file falls back to UTC",
			localtime:    missing,
			timezoneFile: garbage,
			expected:     "UTC",
		},
		{
			name:         "nothing resolves",
			localtime:    missing,
			timezoneFile: missing,
			expected:     "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TZ", "")
			stubHostFiles(t, tt.localtime, tt.timezoneFile)

			assert.Equal(t, tt.expected, NewDetector(tt.configured).Detect())
		})
	}
}

func TestLocalTimezone_FromLocaltime(t *testing.T) {
	dir := t.TempDir()

	zone := writeFile(t, filepath.Join(dir, "zoneinfo", "Europe", "Lisbon"), "TZif2")
	symlink := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink(zone, symlink))

	t.Setenv("TZ", "")
	stubHostFiles(t, symlink, filepath.Join(dir, "missing"))

	assert.Equal(t, "Europe/Lisbon", LocalTimezone())
}

func TestTrimZoneinfo(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", trimZoneinfo("/usr/share/zoneinfo/America/Sao_Paulo"))
	assert.Equal(t, "Europe/Berlin", trimZoneinfo("/var/db/timezone/zoneinfo/Europe/Berlin"))
	assert.Equal(t, "Asia/Tokyo", trimZoneinfo("Asia/Tokyo"))
}
