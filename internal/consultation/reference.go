package consultation

import (
	"fmt"
	"time"
)

// FormatBookingReference derives the human-readable reference for a new
// booking from its scheduled time, e.g. BKG-20250312-1430.
func FormatBookingReference(scheduled time.Time) string {
	return fmt.Sprintf("BKG-%s-%s", scheduled.Format("20060102"), scheduled.Format("1504"))
}

// ParseDatetime accepts the datetime formats the booking form sends.
func ParseDatetime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
