package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	notationBegin = "${"
	notationEnd   = "}"
)

// Evaluator expands ${...} expressions against a data map.
type Evaluator struct {
	cache sync.Map // expression string → compiled *vm.Program
}

// NewEvaluator creates an Evaluator backed by expr-lang/expr.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs a single expression.
func (e *Evaluator) Evaluate(expression string, data map[string]any) (any, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}
	if data == nil {
		data = map[string]any{}
	}
	program, err := e.compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

// Expand replaces every ${...} in s with its value. Nil values expand to "".
func (e *Evaluator) Expand(s string, data map[string]any) (string, error) {
	if !strings.Contains(s, notationBegin) {
		return s, nil
	}
	var b strings.Builder
	for _, seg := range parseExpressions(s) {
		if !seg.isExpression {
			b.WriteString(seg.text)
			continue
		}
		v, err := e.Evaluate(seg.text, data)
		if err != nil {
			return "", err
		}
		if v != nil {
			fmt.Fprint(&b, v)
		}
	}
	return b.String(), nil
}

// Items evaluates expression and returns its elements. The result must be a
// slice or array; nil yields no items.
func (e *Evaluator) Items(expression string, data map[string]any) ([]any, error) {
	v, err := e.Evaluate(expression, data)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("items %q evaluated to %T, expected a list", expression, v)
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}

func (e *Evaluator) compile(expression string) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}

type segment struct {
	isExpression bool
	text         string // literal text or expression without delimiters
}

// parseExpressions splits "Name: ${e.Name}" into [{false "Name: "} {true "e.Name"}].
// An unterminated ${ is kept as literal text.
func parseExpressions(value string) []segment {
	var segments []segment
	remaining := value

	for {
		startIdx := strings.Index(remaining, notationBegin)
		if startIdx < 0 {
			break
		}
		searchFrom := startIdx + len(notationBegin)
		endIdx := findMatchingEnd(remaining[searchFrom:])
		if endIdx < 0 {
			break
		}
		endIdx += searchFrom

		if startIdx > 0 {
			segments = append(segments, segment{text: remaining[:startIdx]})
		}
		segments = append(segments, segment{isExpression: true, text: remaining[searchFrom:endIdx]})
		remaining = remaining[endIdx+len(notationEnd):]
	}

	if remaining != "" {
		segments = append(segments, segment{text: remaining})
	}
	return segments
}

// findMatchingEnd finds the closing brace, skipping braces of map literals
// inside the expression.
func findMatchingEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
