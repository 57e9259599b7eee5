package utils

import (
	"cmp"
	"math"
	"time"
)

// Clamp limits a value between min and max
func Clamp[T cmp.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Minutes converts seconds to minutes
func Minutes(seconds float64) float64 {
	return seconds / 60
}

// Kilometers converts meters to kilometers
func Kilometers(meters float64) float64 {
	return meters / 1000
}

// CalendarDate strips the clock from t, keeping its year, month and day in UTC
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
