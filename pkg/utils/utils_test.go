package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBucket(t *testing.T) {
	assert.Equal(t, "Jan 1, 00:00", FormatBucket("2024-01-01T00:00:00Z", time.UTC))
	assert.Equal(t, "2024-W01", FormatBucket("2024-W01", time.UTC))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"2024-01-01T11:59:50Z": "less than a minute ago",
		"2024-01-01T11:50:00Z": "10 minutes ago",
		"2024-01-01T09:00:00Z": "about 3 hours ago",
		"2023-12-29T12:00:00Z": "3 days ago",
		"2024-01-01T12:10:00Z": "in 10 minutes",
		"not a date":           "Invalid Date",
	}
	for raw, want := range cases {
		assert.Equal(t, want, RelativeTime(raw, now), raw)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-01T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, 10, ts.Hour())

	ts, err = ParseTimestamp("1704103200")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), ts)

	_, err = ParseTimestamp("2024-01-01")
	assert.Error(t, err)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Nvidia beats estimates", PlainText("<p>Nvidia <b>beats</b>\n estimates</p>"))
	assert.Equal(t, "AT&T slides", PlainText("AT&amp;T slides"))
	assert.Equal(t, "plain text", PlainText("  plain   text "))
}

func TestGoSafeRecovers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	GoSafe(func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}

func TestToPointer(t *testing.T) {
	p := ToPointer(3)
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
}

func TestFormatMarketCap(t *testing.T) {
	assert.Equal(t, "$2.20T", FormatMarketCap(2.2e12))
	assert.Equal(t, "$789.12B", FormatMarketCap(789.123e9))
	assert.Equal(t, "$12.50M", FormatMarketCap(12.5e6))
	assert.Equal(t, "$950.00", FormatMarketCap(950))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "29,600", FormatThousands(29600))
	assert.Equal(t, "1,234,567", FormatThousands(1234567))
	assert.Equal(t, "-1,000", FormatThousands(-1000))
}

func TestPrettyDate(t *testing.T) {
	assert.Equal(t, "Mon, 01 Jan 2024 09:30 UTC", PrettyDate(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)))
}
