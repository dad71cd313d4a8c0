package condition

import (
	"slices"
	"strings"
	"sync"

	celgo "github.com/google/cel-go/cel"

	"github.com/tailored-agentic-units/statechain/state"
)

// celCondition executes expressions using cel-go. CEL needs every variable
// declared up front, so programs are compiled per distinct key set and
// cached.
type celCondition struct {
	expression string
	programs   sync.Map // key signature -> celgo.Program
}

// NewCEL parses expression with cel-go. Type checking happens on first
// evaluation against a given key set; referencing a variable no field
// provides is an evaluation error.
func NewCEL(expression string) (Condition, error) {
	if expression == "" {
		return nil, wrap(EngineCEL, expression, ErrEmptyExpression)
	}

	env, err := celgo.NewEnv()
	if err != nil {
		return nil, wrap(EngineCEL, expression, err)
	}
	if _, issues := env.Parse(expression); issues != nil && issues.Err() != nil {
		return nil, wrap(EngineCEL, expression, issues.Err())
	}

	return &celCondition{expression: expression}, nil
}

func (c *celCondition) Expression() string {
	return c.expression
}

func (c *celCondition) Evaluate(s *state.State) (bool, error) {
	activation := environment(s)

	program, err := c.program(activation)
	if err != nil {
		return false, wrap(EngineCEL, c.expression, err)
	}

	out, _, err := program.Eval(activation)
	if err != nil {
		return false, wrap(EngineCEL, c.expression, err)
	}
	return asBool(EngineCEL, c.expression, out.Value())
}

func (c *celCondition) program(activation map[string]any) (celgo.Program, error) {
	names := make([]string, 0, len(activation))
	for name := range activation {
		names = append(names, name)
	}
	slices.Sort(names)
	signature := strings.Join(names, "\x00")

	if cached, ok := c.programs.Load(signature); ok {
		return cached.(celgo.Program), nil
	}

	opts := make([]celgo.EnvOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, celgo.Variable(name, celgo.DynType))
	}
	env, err := celgo.NewEnv(opts...)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(c.expression)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	c.programs.Store(signature, program)
	return program, nil
}
