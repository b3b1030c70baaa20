package engine

import (
	"github.com/mitchellh/mapstructure"
)

// Rule is the declarative comparison a caller wants applied.
type Rule struct {
	Field          string    `json:"field" mapstructure:"field"`
	Condition      Condition `json:"condition" mapstructure:"condition"`
	ConditionValue any       `json:"condition_value" mapstructure:"condition_value"`
}

// Request is a shape-validated {rule, data} pair.
type Request struct {
	Rule Rule
	Data any
}

// MsgInvalidPayload is returned whenever the top-level input is not a
// well-formed request object. The transport reuses it for bodies that do
// not decode at all.
const MsgInvalidPayload = "Invalid JSON payload passed."

const (
	msgRuleNotObject    = "rule should be an object."
	msgFieldNotString   = "rule.field should be a string."
	msgUnknownCondition = "rule.condition must be one of eq, neq, gt, gte, or contains"
	msgDataWrongShape   = "data should be an array, an object, or a string."
)

func required(name string) Outcome {
	return abort(OutcomeMissingRequiredField, name+" is required.")
}

// parseRequest checks payload against the {rule, data} shape. Checks run in
// priority order and only the first violation is reported — validation bails
// rather than collecting every defect.
func (e *Engine) parseRequest(payload any) (*Request, *Outcome) {
	body, ok := payload.(map[string]any)
	if !ok {
		return nil, fail(abort(OutcomeInvalidSchema, MsgInvalidPayload))
	}

	rawRule, ok := body["rule"]
	if !ok {
		return nil, fail(required("rule"))
	}
	if _, ok := body["data"]; !ok {
		return nil, fail(required("data"))
	}

	ruleMap, ok := rawRule.(map[string]any)
	if !ok {
		return nil, fail(abort(OutcomeTypeError, msgRuleNotObject))
	}

	field, ok := ruleMap["field"]
	if !ok {
		return nil, fail(required("rule.field"))
	}
	if _, ok := field.(string); !ok {
		return nil, fail(abort(OutcomeTypeError, msgFieldNotString))
	}

	rawCondition, ok := ruleMap["condition"]
	if !ok {
		return nil, fail(required("rule.condition"))
	}
	name, ok := rawCondition.(string)
	if !ok {
		return nil, fail(abort(OutcomeTypeError, msgUnknownCondition))
	}
	if _, registered := e.conditions[Condition(name)]; !registered {
		return nil, fail(abort(OutcomeTypeError, msgUnknownCondition))
	}

	// Presence is what matters here: an explicit null is a present value.
	if _, ok := ruleMap["condition_value"]; !ok {
		return nil, fail(required("rule.condition_value"))
	}

	data := body["data"]
	switch data.(type) {
	case map[string]any, []any, string:
	default:
		return nil, fail(abort(OutcomeTypeError, msgDataWrongShape))
	}

	var rule Rule
	if err := mapstructure.Decode(ruleMap, &rule); err != nil {
		return nil, fail(abort(OutcomeInvalidSchema, MsgInvalidPayload))
	}
	return &Request{Rule: rule, Data: data}, nil
}

func fail(o Outcome) *Outcome { return &o }
