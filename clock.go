package main

import (
	"time"

	"github.com/chewxy/math32"
)

// SpinAngle maps the time elapsed since startup to a rotation angle in
// radians. The angle is never wrapped; precision degrades after very long
// runs.
func SpinAngle(elapsed time.Duration, revolutionsPerSecond float32) float32 {
	return float32(elapsed.Seconds()) * revolutionsPerSecond * 2 * math32.Pi
}
