package persistence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EncodeTimestamp renders t as a decimal UNIX timestamp in seconds.
func EncodeTimestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// DecodeTimestamp parses a decimal UNIX timestamp in seconds. Surrounding
// whitespace is ignored so hand-edited files still load.
func DecodeTimestamp(s string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return time.Unix(secs, 0), nil
}
