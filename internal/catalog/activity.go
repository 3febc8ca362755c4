package catalog

// SkillKey identifies a classroom behavior being taught.
type SkillKey string

const (
	RaiseHand       SkillKey = "raiseHand"
	StaySeated      SkillKey = "staySeated"
	TakeTurns       SkillKey = "takeTurns"
	LineUp          SkillKey = "lineUp"
	CleanDesk       SkillKey = "cleanDesk"
	TransitionTasks SkillKey = "transitionTasks"
)

// StepCount is the fixed number of steps every activity carries. The tutorial
// cursor, the tutorial timer and the quiz target index all assume it.
const StepCount = 4

// AllSkillKeys returns every skill key in catalog order.
func AllSkillKeys() []SkillKey {
	return []SkillKey{RaiseHand, StaySeated, TakeTurns, LineUp, CleanDesk, TransitionTasks}
}

// Valid reports whether k is one of the enumerated skill keys.
func (k SkillKey) Valid() bool {
	for _, known := range AllSkillKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// Activity is a single teachable skill with its scripted steps.
type Activity struct {
	Key   SkillKey `validate:"required,skillkey"`
	Title string   `validate:"required"`
	Why   string
	Steps []string `validate:"len=4,dive,required"`
}

// Step returns the step at index i, or "" when i is out of range.
func (a Activity) Step(i int) string {
	if i < 0 || i >= len(a.Steps) {
		return ""
	}
	return a.Steps[i]
}
