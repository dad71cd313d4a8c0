package condition

import (
	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/tailored-agentic-units/statechain/state"
)

// exprCondition executes expressions using github.com/expr-lang/expr.
type exprCondition struct {
	expression string
	program    *exprvm.Program
}

// NewExpr compiles expression with expr-lang/expr. Variables that no field
// provides evaluate to nil.
func NewExpr(expression string) (Condition, error) {
	if expression == "" {
		return nil, wrap(EngineExpr, expression, ErrEmptyExpression)
	}

	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, wrap(EngineExpr, expression, err)
	}

	return &exprCondition{expression: expression, program: program}, nil
}

func (c *exprCondition) Expression() string {
	return c.expression
}

func (c *exprCondition) Evaluate(s *state.State) (bool, error) {
	out, err := exprlang.Run(c.program, environment(s))
	if err != nil {
		return false, wrap(EngineExpr, c.expression, err)
	}
	return asBool(EngineExpr, c.expression, out)
}
