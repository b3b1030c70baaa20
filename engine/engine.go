package engine

import "fmt"

// Engine evaluates a single declarative {rule, data} pair and reports whether
// the data satisfies the rule, or why evaluation could not proceed. An Engine
// holds only its condition registry; Evaluate mutates nothing, so one engine
// may serve any number of concurrent requests.
type Engine struct {
	conditions map[Condition]Predicate
}

// New creates an engine with the built-in condition registry
// (eq, neq, gt, gte, contains).
func New() *Engine {
	return &Engine{conditions: defaultConditions()}
}

// Register adds (or replaces) a named condition predicate. Register is meant
// for setup time, before the engine starts serving requests.
func (e *Engine) Register(name Condition, p Predicate) {
	e.conditions[name] = p
}

// Evaluate checks payload against the {rule, data} shape and, when well
// formed, applies the rule's condition to the resolved field value. Every
// failure mode is a returned Outcome; Evaluate never panics on JSON-decoded
// input and is a pure function of payload.
func (e *Engine) Evaluate(payload any) Outcome {
	req, defect := e.parseRequest(payload)
	if defect != nil {
		return *defect
	}

	rule := req.Rule
	switch data := req.Data.(type) {
	case map[string]any:
		value, found := Resolve(data, rule.Field)
		if !found {
			return abort(OutcomeMissingDataField,
				fmt.Sprintf("field %s is missing from data.", rule.Field))
		}
		return completed(rule, value, e.conditions[rule.Condition](value, rule.ConditionValue))
	default:
		// Arrays and strings are compared as whole containers; rule.field
		// only acts as a positional index for contains. An out-of-range
		// index is therefore an unsatisfied comparison, not an abort.
		return completed(rule, data, e.satisfiedByContainer(rule, data))
	}
}

func (e *Engine) satisfiedByContainer(rule Rule, container any) bool {
	if rule.Condition == Contains {
		if _, numeric := parseIndex(rule.Field); numeric {
			value, found := Resolve(container, rule.Field)
			return found && equal(value, rule.ConditionValue)
		}
	}
	return e.conditions[rule.Condition](container, rule.ConditionValue)
}
