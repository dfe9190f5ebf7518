// risk/scorer.go
package risk

import (
	"math"
	"strings"
)

// Score estimates request risk from the device and location descriptors.
// Pure function: no I/O, identical inputs always produce identical output.
// The result is clamped to [0.0, 1.0] and rounded to two decimal places.
func Score(device, location string) float64 {
	score := 0.0
	d := strings.ToLower(device)
	l := strings.ToLower(location)

	if strings.Contains(d, "managed") || strings.Contains(d, "corp") {
		score -= 0.2
	}
	if strings.Contains(d, "personal") || strings.Contains(d, "unmanaged") {
		score += 0.4
	}
	if strings.HasPrefix(l, "office") || strings.Contains(l, "vpn") {
		score -= 0.1
	} else {
		score += 0.2
	}

	score = math.Max(0.0, math.Min(1.0, score))
	return math.Round(score*100) / 100
}
