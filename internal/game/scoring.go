package game

import (
	"fmt"
	"strings"
)

// MaxStars is the best possible rating.
const MaxStars = 3

// StarRating derives the 1..3 star rating from the move count. It is recomputed on every
// move change, never tracked incrementally.
func StarRating(moves int) int {
	switch {
	case moves < 10:
		return 3
	case moves < 16:
		return 2
	default:
		return 1
	}
}

// FormatTime renders elapsed seconds as M:SS with unbounded minutes.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// StarString renders a rating as filled and empty stars, e.g. "★★☆".
func StarString(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxStars-rating)
}

// MovesLabel renders the move counter, e.g. "1 Move" or "0 Moves".
func MovesLabel(moves int) string {
	if moves == 1 {
		return "1 Move"
	}
	return fmt.Sprintf("%d Moves", moves)
}
