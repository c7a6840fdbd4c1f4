package duration

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"2h30m", 9000 * time.Second},
		{"45s", 45 * time.Second},
		{"1h1m1s", 3661 * time.Second},
		{"", 0},
		{"garbage", 0},
		{"1H1M1S", 3661 * time.Second},
		{"30m2h", 9000 * time.Second},
		{"2h 30m", 9000 * time.Second},
		{"10ms", 10 * time.Minute},
		{"h m s", 0},
		{"0h0m0s", 0},
		{"90m", 90 * time.Minute},
		{"1h2h", time.Hour},
		{"36h", 36 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOverflow(t *testing.T) {
	t.Run("DigitsTooLong", func(t *testing.T) {
		_, err := Parse("99999999999999999999s")
		assert.True(t, errors.Is(err, ErrOverflow), "err = %v", err)
	})

	t.Run("UnitTooLarge", func(t *testing.T) {
		_, err := Parse("3000000h")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("SumTooLarge", func(t *testing.T) {
		_, err := Parse("2562047h48m")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("LargestAccepted", func(t *testing.T) {
		got, err := Parse("2562047h47m")
		require.NoError(t, err)
		assert.Equal(t, int64(2562047*3600+47*60), Seconds(got))
	})
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, int64(0), Seconds(-5*time.Second))
	assert.Equal(t, int64(0), Seconds(999*time.Millisecond))
	assert.Equal(t, int64(29), Seconds(29*time.Second+900*time.Millisecond))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"Zero", 0, "00:00:00"},
		{"Negative", -time.Minute, "00:00:00"},
		{"Seconds", 30 * time.Second, "00:00:30"},
		{"Truncates", 29*time.Second + 999*time.Millisecond, "00:00:29"},
		{"Mixed", 3661 * time.Second, "01:01:01"},
		{"TwoAndAHalfHours", 9000 * time.Second, "02:30:00"},
		{"PastOneDay", 36 * time.Hour, "36:00:00"},
		{"ThreeDigitHours", 100*time.Hour + 59*time.Minute + 59*time.Second, "100:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.d))
		})
	}
}
