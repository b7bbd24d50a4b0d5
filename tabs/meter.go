package tabs

import "strings"

const maxStars = 3

// starMeter renders an earned/empty star meter. Stars come from the
// database, so out-of-range values are clamped rather than trusted.
func starMeter(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > maxStars {
		stars = maxStars
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", maxStars-stars)
}
