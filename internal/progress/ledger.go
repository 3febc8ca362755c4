// Package progress holds the weekly star ledger: week key -> skill key ->
// accumulated stars.
//
// A Ledger is an immutable snapshot. Award returns a new ledger and shares
// untouched week maps with its input, so neither may be mutated in place.
package progress

import (
	"sort"

	"github.com/abhisek/skillstars/internal/catalog"
)

// Ledger maps ISO week keys to per-skill star totals.
type Ledger map[string]map[catalog.SkillKey]int

// Award returns a ledger with amount added to ledger[week][skill], creating
// the week and skill at 0 when absent. Totals only grow: non-positive amounts
// return l unchanged.
func Award(l Ledger, week string, skill catalog.SkillKey, amount int) Ledger {
	if amount <= 0 {
		return l
	}

	next := make(Ledger, len(l)+1)
	for w, skills := range l {
		next[w] = skills
	}

	prev := l[week]
	skills := make(map[catalog.SkillKey]int, len(prev)+1)
	for k, v := range prev {
		skills[k] = v
	}
	skills[skill] += amount
	next[week] = skills

	return next
}

// TotalForWeek sums every skill's stars in week. Absent weeks total 0.
func TotalForWeek(l Ledger, week string) int {
	total := 0
	for _, n := range l[week] {
		total += n
	}
	return total
}

// ForSkill returns the stars earned for skill in week.
func ForSkill(l Ledger, week string, skill catalog.SkillKey) int {
	return l[week][skill]
}

// Weeks returns the ledger's week keys, newest first. Week keys sort
// chronologically as strings.
func Weeks(l Ledger) []string {
	weeks := make([]string, 0, len(l))
	for w := range l {
		weeks = append(weeks, w)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks
}
