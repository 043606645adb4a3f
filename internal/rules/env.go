// Package rules wraps a CEL environment for evaluating content-authored
// formulas (action gating, house rules) against participant snapshots.
package rules

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/10thony/campaignion-engine/internal/dice"
)

// Registry manages the CEL environment and provides helper methods for
// evaluation.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the combat-engine
// variables and a roll(notation) function backed by the dice engine.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("actor", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("target", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("action", cel.MapType(cel.StringType, cel.AnyType)),

		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					s, ok := arg.Value().(string)
					if !ok {
						return types.Int(0)
					}
					res, err := dice.RollNotation(s)
					if err != nil {
						return types.Int(0)
					}
					return types.Int(res.Total)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// EvalBool evaluates a formula expected to produce a boolean. Any
// non-boolean result or evaluation failure is reported as an error.
func (r *Registry) EvalBool(expression string, context map[string]any) (bool, error) {
	out, err := r.Eval(expression, context)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, errNotBoolean(expression)
	}
	return b, nil
}

type errNotBoolean string

func (e errNotBoolean) Error() string {
	return "rules: formula did not evaluate to a boolean: " + string(e)
}
