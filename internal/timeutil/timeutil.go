package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// legacyGameDateLayout matches the historical Elo dataset's M/D/YYYY dates.
const legacyGameDateLayout = "1/2/2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseGameDate parses a game date in either the canonical layout or the
// legacy M/D/YYYY layout used by the historical results dataset.
func ParseGameDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(legacyGameDateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
