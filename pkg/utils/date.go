package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const displayLayout = "Jan 2, 15:04"

// FormatBucket renders a backend time bucket label for display. Labels that
// are not RFC3339 are returned unchanged.
func FormatBucket(label string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, label)
	if err != nil {
		return label
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(displayLayout)
}

// RelativeTime renders how long ago raw happened relative to now, e.g.
// "about 3 hours ago". Unparseable timestamps render as "Invalid Date".
func RelativeTime(raw string, now time.Time) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return "Invalid Date"
	}

	d := now.Sub(t)
	suffix := "ago"
	if d < 0 {
		d = -d
		suffix = "from now"
	}

	var s string
	switch {
	case d < 30*time.Second:
		s = "less than a minute"
	case d < 90*time.Second:
		s = "1 minute"
	case d < 45*time.Minute:
		s = fmt.Sprintf("%d minutes", int(math.Round(d.Minutes())))
	case d < 90*time.Minute:
		s = "about 1 hour"
	case d < 24*time.Hour:
		s = fmt.Sprintf("about %d hours", int(math.Round(d.Hours())))
	case d < 48*time.Hour:
		s = "1 day"
	case d < 30*24*time.Hour:
		s = fmt.Sprintf("%d days", int(math.Round(d.Hours()/24)))
	case d < 60*24*time.Hour:
		s = "about 1 month"
	case d < 365*24*time.Hour:
		s = fmt.Sprintf("%d months", int(math.Round(d.Hours()/(24*30))))
	default:
		s = fmt.Sprintf("about %d years", int(math.Round(d.Hours()/(24*365))))
	}

	if suffix == "ago" {
		return s + " ago"
	}
	return "in " + s
}

// ParseTimestamp accepts the timestamp shapes the backend emits: RFC3339
// with or without a zone, and unix seconds.
func ParseTimestamp(raw string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
		whole, frac := math.Modf(secs)
		return time.Unix(int64(whole), int64(frac*1e9)).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}

// PrettyDate renders t for notifications, e.g. "Mon, 02 Jan 2006 15:04 UTC".
func PrettyDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04 MST")
}
