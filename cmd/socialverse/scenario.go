package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Step ops accepted in a scenario, with the number of args each takes.
var opArity = map[string]int{
	"add_user":          3,
	"add_friendship":    2,
	"remove_friendship": 2,
	"mutual_friends":    2,
	"communities":       0,
	"user_info":         1,
	"users":             0,
	"reach":             1,
	"add_post":          1,
	"delete_post":       0,
	"undo_post":         0,
	"redo_post":         0,
	"feed":              0,
	"log_activity":      3,
	"pop_activity":      0,
	"activities":        0,
	"notify":            3,
	"read_notification": 0,
	"notifications":     0,
	"graph_versions":    0,
	"time_travel":       1,
	"stats":             0,
}

// Step is one session call. Args are positional, in the order the session
// method takes them.
type Step struct {
	Op   string   `yaml:"op" validate:"required,knownop"`
	Args []string `yaml:"args"`
}

// Scenario is a replayable list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

var errBadScenario = errors.New("socialverse: invalid scenario")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("knownop", func(fl validator.FieldLevel) bool {
		_, ok := opArity[fl.Field().String()]
		return ok
	})

	return v
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadScenario, err)
	}

	return parseScenario(raw)
}

func parseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadScenario, err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// validate checks struct tags first, then each step's arity.
func (sc *Scenario) validate() error {
	if err := validate.Struct(sc); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", errBadScenario, err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("%w: %s", errBadScenario, strings.Join(msgs, "; "))
	}
	for i, st := range sc.Steps {
		if want := opArity[st.Op]; len(st.Args) != want {
			return fmt.Errorf("%w: step %d (%s) takes %d args, got %d", errBadScenario, i+1, st.Op, want, len(st.Args))
		}
	}

	return nil
}
