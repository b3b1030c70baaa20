package engine

// OutcomeType tags the result of evaluating a request.
type OutcomeType string

const (
	// OutcomeInvalidSchema — the top-level input is not a well-formed request object.
	OutcomeInvalidSchema OutcomeType = "invalid_schema"
	// OutcomeTypeError — a present field has the wrong shape or names an unknown condition.
	OutcomeTypeError OutcomeType = "type_error"
	// OutcomeMissingRequiredField — a mandatory field is absent from the request.
	OutcomeMissingRequiredField OutcomeType = "missing_required_field"
	// OutcomeMissingDataField — the request is well formed but the named field
	// cannot be located inside data.
	OutcomeMissingDataField OutcomeType = "missing_data_field"
	// OutcomeCompleted — the comparison actually ran, successfully or not.
	OutcomeCompleted OutcomeType = "completed"
)

// Result is the payload of a completed evaluation. Error reports whether the
// comparison failed — it never indicates a malformed request.
type Result struct {
	Error          bool      `json:"error"`
	Field          string    `json:"field"`
	FieldValue     any       `json:"field_value"`
	Condition      Condition `json:"condition"`
	ConditionValue any       `json:"condition_value"`
}

// Outcome is the tagged union returned by Evaluate. Aborts carry a Message
// and a nil Result; completed outcomes carry a Result and an empty Message.
type Outcome struct {
	Type    OutcomeType
	Message string
	Result  *Result
}

// Aborted reports whether evaluation stopped before any comparison ran.
func (o Outcome) Aborted() bool { return o.Type != OutcomeCompleted }

func abort(t OutcomeType, message string) Outcome {
	return Outcome{Type: t, Message: message}
}

func completed(rule Rule, value any, satisfied bool) Outcome {
	return Outcome{
		Type: OutcomeCompleted,
		Result: &Result{
			Error:          !satisfied,
			Field:          rule.Field,
			FieldValue:     value,
			Condition:      rule.Condition,
			ConditionValue: rule.ConditionValue,
		},
	}
}
