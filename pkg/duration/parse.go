package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrOverflow is returned when a duration string describes more time than a
// time.Duration can hold.
var ErrOverflow = errors.New("duration overflow")

// MaxSeconds is the largest whole number of seconds a time.Duration can hold.
const MaxSeconds = int64(math.MaxInt64 / int64(time.Second))

// unit pairs a term pattern with its length in seconds.
type unit struct {
	re    *regexp.Regexp
	scale int64
}

var units = []unit{
	{re: regexp.MustCompile(`(\d+)[hH]`), scale: 3600},
	{re: regexp.MustCompile(`(\d+)[mM]`), scale: 60},
	{re: regexp.MustCompile(`(\d+)[sS]`), scale: 1},
}

// Parse converts a duration string such as "2h30m" into a duration with
// whole-second resolution. Unmatched or malformed input yields zero.
func Parse(s string) (time.Duration, error) {
	var total int64

	for _, u := range units {
		m := u.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || n > MaxSeconds/u.scale {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, m[0])
		}

		secs := n * u.scale
		if total > MaxSeconds-secs {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		total += secs
	}

	return time.Duration(total) * time.Second, nil
}

// Seconds returns the whole number of seconds in d, truncating any fraction.
// Negative durations return zero.
func Seconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}
