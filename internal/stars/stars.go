package stars

const (
	// Base is the participation award every finished loop earns.
	Base = 3

	// Min and Max bound any award.
	Min = 1
	Max = 5
)

// Score returns the stars earned for one loop. Practice that ran out on its
// own and a correct quiz answer are each worth one bonus star.
func Score(timerExpiredNaturally, answeredCorrectly bool) int {
	n := Base
	if timerExpiredNaturally {
		n++
	}
	if answeredCorrectly {
		n++
	}
	return clamp(n, Min, Max)
}

func clamp(n, lo, hi int) int {
	switch {
	case n < lo:
		return lo
	case n > hi:
		return hi
	default:
		return n
	}
}

// Praise returns the reward headline for an award.
func Praise(earned int) string {
	switch {
	case earned >= Max:
		return "Superstar!"
	case earned > Base:
		return "Great job!"
	default:
		return "Nice try!"
	}
}
