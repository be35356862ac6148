// Package filter selects expanded range values with a CEL predicate.
//
// The predicate sees each value as the integer variable n:
//
//	p, _ := filter.Compile("n % 2 == 0")
//	evens, _ := p.Apply([]int{0, 1, 2, 3, 4, 5}) // [0 2 4]
package filter

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors
var (
	ErrEmptyExpression = errors.New("empty filter expression")
	ErrNotBoolean      = errors.New("filter expression must evaluate to bool")
)

// Variable is the name the predicate uses for the current value.
const Variable = "n"

// Predicate is a compiled filter expression. It is safe for concurrent use.
type Predicate struct {
	source  string
	program cel.Program
}

// Compile compiles a CEL expression over n.
func Compile(expression string) (*Predicate, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	env, err := cel.NewEnv(
		cel.HomogeneousAggregateLiterals(),
		cel.EagerlyValidateDeclarations(true),
		cel.Variable(Variable, cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compilation error: %w", issues.Err())
	}

	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q returns %s", ErrNotBoolean, expression, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program: %w", err)
	}

	return &Predicate{
		source:  expression,
		program: program,
	}, nil
}

// String returns the source expression
func (p *Predicate) String() string {
	return p.source
}

// Match evaluates the predicate for a single value.
func (p *Predicate) Match(n int) (bool, error) {
	result, _, err := p.program.Eval(map[string]any{
		Variable: int64(n),
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q for n=%d: %w", p.source, n, err)
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, result.Value())
	}

	return matched, nil
}

// Apply returns the values that match, keeping their order. The result is
// never nil.
func (p *Predicate) Apply(values []int) ([]int, error) {
	results := make([]int, 0, len(values))

	for _, v := range values {
		matched, err := p.Match(v)
		if err != nil {
			return nil, err
		}

		if matched {
			results = append(results, v)
		}
	}

	return results, nil
}
