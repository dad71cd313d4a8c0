// Package condition evaluates boolean expressions against a state's fields.
//
// Two engines are available: expr-lang/expr ("expr") and cel-go ("cel").
// Every field of the state is exposed as a variable, plus "variant" holding
// the state's variant name unless a field of that name shadows it.
//
//	c, err := condition.New("expr", `status == "approved" && amount > 100`)
//	ok, err := c.Evaluate(s)
//
// Conditions plug into pipelines through Predicate:
//
//	step := pipeline.When(condition.Predicate(c), approve)
package condition

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/statechain/state"
)

// Engine names accepted by New.
const (
	EngineExpr = "expr"
	EngineCEL  = "cel"
)

// Sentinel errors for condition construction and evaluation.
var (
	ErrUnknownEngine   = errors.New("unknown condition engine")
	ErrEmptyExpression = errors.New("expression must not be empty")
	ErrNotBoolean      = errors.New("expression did not evaluate to a boolean")
)

// Condition is a compiled boolean expression over state fields.
type Condition interface {
	Evaluate(s *state.State) (bool, error)
	Expression() string
}

// New compiles expression with the named engine.
func New(engine, expression string) (Condition, error) {
	switch engine {
	case EngineExpr:
		return NewExpr(expression)
	case EngineCEL:
		return NewCEL(expression)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

// Predicate adapts a Condition to a state.Predicate. Evaluation errors count
// as false.
func Predicate(c Condition) state.Predicate {
	return func(s *state.State) bool {
		ok, err := c.Evaluate(s)
		return err == nil && ok
	}
}

// EvaluationError captures engine metadata alongside the originating error.
type EvaluationError struct {
	Engine string
	Expr   string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("condition: %s expr=%q: %v", e.Engine, e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func wrap(engine, expression string, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvaluationError{Engine: engine, Expr: expression, Err: err}
}

func asBool(engine, expression string, out any) (bool, error) {
	b, ok := out.(bool)
	if !ok {
		return false, wrap(engine, expression, fmt.Errorf("%w: got %T", ErrNotBoolean, out))
	}
	return b, nil
}

// environment exposes the state's fields plus its variant name.
func environment(s *state.State) map[string]any {
	env := make(map[string]any, s.Len()+1)
	env["variant"] = s.Variant().String()
	for k, v := range s.Entries() {
		env[k] = v
	}
	return env
}
