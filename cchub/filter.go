package cchub

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// FilterRecords selects the records matching an expr expression,
// evaluated against each record's decoded fields. Fields missing from
// a record evaluate as nil.
//
// Useful for narrowing a FetchAll result beyond what the server-side
// filter spec can express:
//
//	open, err := cchub.FilterRecords(res.Records, `status == "open" && priority > 2`)
func FilterRecords(records []json.RawMessage, expression string) ([]json.RawMessage, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter: %w", err)
	}

	var matched []json.RawMessage
	for i, record := range records {
		env := make(map[string]interface{})
		if err := json.Unmarshal(record, &env); err != nil {
			return nil, fmt.Errorf("failed to decode record %d: %w", i, err)
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter on record %d: %w", i, err)
		}

		if keep, ok := out.(bool); ok && keep {
			matched = append(matched, record)
		}
	}

	return matched, nil
}
