package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrUnknownSkill is returned when a skill key is not in the catalog.
var ErrUnknownSkill = errors.New("unknown skill")

// Catalog is the fixed, ordered list of activities supplied to the engine.
// It is read-only once built.
type Catalog struct {
	Activities []Activity `validate:"min=1,unique=Key,dive"`

	byKey map[SkillKey]int
}

// New validates activities and builds a catalog. The slice is copied so later
// edits by the caller cannot leak in.
func New(activities []Activity) (*Catalog, error) {
	c := &Catalog{
		Activities: make([]Activity, len(activities)),
		byKey:      make(map[SkillKey]int, len(activities)),
	}
	for i, a := range activities {
		a.Steps = append([]string(nil), a.Steps...)
		c.Activities[i] = a
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("skillkey", validSkillKey); err != nil {
		return nil, fmt.Errorf("register skill key rule: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	for i, a := range c.Activities {
		c.byKey[a.Key] = i
	}
	return c, nil
}

func validSkillKey(fl validator.FieldLevel) bool {
	return SkillKey(fl.Field().String()).Valid()
}

// Default returns the built-in classroom skills catalog.
func Default() *Catalog {
	c, err := New(defaultActivities)
	if err != nil {
		// The built-in data is covered by tests; a failure here is a programming error.
		panic(err)
	}
	return c
}

// Get returns the activity for key.
func (c *Catalog) Get(key SkillKey) (Activity, error) {
	i, ok := c.byKey[key]
	if !ok {
		return Activity{}, fmt.Errorf("%w: %q", ErrUnknownSkill, key)
	}
	return c.Activities[i], nil
}

// All returns the activities in display order.
func (c *Catalog) All() []Activity {
	out := make([]Activity, len(c.Activities))
	copy(out, c.Activities)
	return out
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.Activities)
}
