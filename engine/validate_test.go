package engine_test

import (
	"testing"

	"github.com/km-arc/rule-validator/engine"
)

// shapeCase feeds a raw payload through Evaluate and checks the abort.
func shapeCase(t *testing.T, label string, body any, wantType engine.OutcomeType, wantMessage string) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		assertAbort(t, engine.New().Evaluate(body), wantType, wantMessage)
	})
}

func TestShape_TopLevel(t *testing.T) {
	shapeCase(t, "bare string", "hello",
		engine.OutcomeInvalidSchema, "Invalid JSON payload passed.")
	shapeCase(t, "bare number", float64(7),
		engine.OutcomeInvalidSchema, "Invalid JSON payload passed.")
	shapeCase(t, "bare array", []any{"rule", "data"},
		engine.OutcomeInvalidSchema, "Invalid JSON payload passed.")
	shapeCase(t, "nil payload", nil,
		engine.OutcomeInvalidSchema, "Invalid JSON payload passed.")
}

func TestShape_RequiredFields(t *testing.T) {
	shapeCase(t, "rule missing", map[string]any{"data": map[string]any{}},
		engine.OutcomeMissingRequiredField, "rule is required.")
	shapeCase(t, "data missing", map[string]any{"rule": map[string]any{}},
		engine.OutcomeMissingRequiredField, "data is required.")
	// data absence outranks the shape of rule
	shapeCase(t, "data missing and rule malformed", map[string]any{"rule": "not-an-object"},
		engine.OutcomeMissingRequiredField, "data is required.")
}

func TestShape_Rule(t *testing.T) {
	shapeCase(t, "rule not an object",
		map[string]any{"rule": "x", "data": map[string]any{}},
		engine.OutcomeTypeError, "rule should be an object.")

	shapeCase(t, "rule.field missing",
		map[string]any{"rule": map[string]any{}, "data": map[string]any{}},
		engine.OutcomeMissingRequiredField, "rule.field is required.")

	shapeCase(t, "rule.field not a string",
		map[string]any{
			"rule": map[string]any{"field": float64(1)},
			"data": map[string]any{},
		},
		engine.OutcomeTypeError, "rule.field should be a string.")
}

func TestShape_Condition(t *testing.T) {
	shapeCase(t, "condition missing",
		map[string]any{
			"rule": map[string]any{"field": "age"},
			"data": map[string]any{},
		},
		engine.OutcomeMissingRequiredField, "rule.condition is required.")

	enumeration := "rule.condition must be one of eq, neq, gt, gte, or contains"

	shapeCase(t, "condition unknown",
		map[string]any{
			"rule": map[string]any{"field": "age", "condition": "within"},
			"data": map[string]any{},
		},
		engine.OutcomeTypeError, enumeration)

	shapeCase(t, "condition not a string",
		map[string]any{
			"rule": map[string]any{"field": "age", "condition": float64(3)},
			"data": map[string]any{},
		},
		engine.OutcomeTypeError, enumeration)
}

func TestShape_ConditionValue(t *testing.T) {
	shapeCase(t, "condition_value missing",
		map[string]any{
			"rule": map[string]any{"field": "age", "condition": "eq"},
			"data": map[string]any{},
		},
		engine.OutcomeMissingRequiredField, "rule.condition_value is required.")

	// An explicit null is present — the check is on the key, not the value.
	t.Run("condition_value null is present", func(t *testing.T) {
		out := engine.New().Evaluate(map[string]any{
			"rule": map[string]any{"field": "age", "condition": "eq", "condition_value": nil},
			"data": map[string]any{"age": nil},
		})
		assertCompleted(t, out, false)
	})
}

func TestShape_Data(t *testing.T) {
	rule := map[string]any{"field": "0", "condition": "eq", "condition_value": "a"}

	shapeCase(t, "data is a number",
		map[string]any{"rule": rule, "data": float64(4)},
		engine.OutcomeTypeError, "data should be an array, an object, or a string.")
	shapeCase(t, "data is a bool",
		map[string]any{"rule": rule, "data": true},
		engine.OutcomeTypeError, "data should be an array, an object, or a string.")
	shapeCase(t, "data is null",
		map[string]any{"rule": rule, "data": nil},
		engine.OutcomeTypeError, "data should be an array, an object, or a string.")

	t.Run("string data is valid", func(t *testing.T) {
		out := engine.New().Evaluate(map[string]any{"rule": rule, "data": "abc"})
		if out.Aborted() {
			t.Fatalf("unexpected abort: %q %q", out.Type, out.Message)
		}
	})
}

func TestShape_FirstViolationWins(t *testing.T) {
	// field is malformed AND condition is unknown — only the field defect
	// is reported.
	out := engine.New().Evaluate(map[string]any{
		"rule": map[string]any{"field": float64(1), "condition": "within"},
		"data": map[string]any{},
	})
	assertAbort(t, out, engine.OutcomeTypeError, "rule.field should be a string.")
}
