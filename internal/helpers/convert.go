// Package helpers provides small numeric utility functions shared across
// idnakit, chiefly range clamping for values whose target domain is narrower
// than the int they were computed in (Bootstring digit thresholds, API query
// limits).
package helpers

// clampInt restricts v to the range [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	return clampInt(v, lowerLimit, upperLimit)
}
