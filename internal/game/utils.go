package game

import (
	"fmt"
	"math"
	"time"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampUnit limits v to [-1, 1].
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// formatDuration formats a duration as MM:SS, rounding partial seconds up
// so a countdown only shows 00:00 once it has finished.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// recent returns up to n trailing entries of names, newest first.
func recent(names []string, n int) []string {
	if n > len(names) {
		n = len(names)
	}
	out := make([]string, 0, n)
	for i := len(names) - 1; i >= len(names)-n; i-- {
		out = append(out, names[i])
	}
	return out
}
