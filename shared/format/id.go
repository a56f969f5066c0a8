package format

import (
	"pakt/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const uniqueIDLength = 9

// GenerateUniqueID returns a short random id such as "_3f9c1a2b7".
func GenerateUniqueID() string {
	return "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:uniqueIDLength]
}

// FormatTimestampForDisplay shows only the time of t in the application zone, e.g. "3:04 PM".
func FormatTimestampForDisplay(t time.Time) string {
	return timezone.Format(t, "3:04 PM")
}
