package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_ShouldFormatTime(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 3*time.Second, "2m 3.00s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3.00s"},
		{26*time.Hour + 4*time.Minute, "1d 2h 4m 0.00s"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTime(tc.d))
		})
	}
}

func TestFormat_ShouldNotColorizeByDefault(t *testing.T) {
	assert.False(t, Colorize)
	assert.Equal(t, "done", DecorateText("done", SuccessMessage))
}

func TestFormat_ShouldDecorateText(t *testing.T) {
	defer func(c bool) { Colorize = c }(Colorize)

	Colorize = true
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))

	Colorize = false
	assert.Equal(t, "failed", DecorateText("failed", ErrorMessage))
}

func TestMath_Max(t *testing.T) {
	assert.Equal(t, 1, Max(1, 0))
	assert.Equal(t, 16, Max(1, 16))
	assert.Equal(t, 2.5, Max(2.5, -3.0))
}
