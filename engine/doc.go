// Package engine is the decision core of the rule-validation service.
//
// A caller submits a {rule, data} pair; the engine validates the request
// shape, resolves the rule's field inside data, applies the named condition
// and returns one typed Outcome. Nothing is thrown across the boundary: a
// malformed request, an unresolvable field and a failed comparison are all
// ordinary return values.
//
//	eng := engine.New()
//	out := eng.Evaluate(map[string]any{
//	    "rule": map[string]any{
//	        "field":           "missions.count",
//	        "condition":       "gte",
//	        "condition_value": float64(30),
//	    },
//	    "data": map[string]any{
//	        "missions": map[string]any{"count": float64(45)},
//	    },
//	})
//	// out.Type == engine.OutcomeCompleted, out.Result.Error == false
//
// # Field resolution
//
// Object data is walked by the dot-separated segments of rule.field; array
// and string data use rule.field as a numeric index. When data is an array
// or a string the condition is applied to the whole container instead of a
// resolved element — rule.field then only matters for contains, where a
// numeric field selects the element to compare positionally.
//
// # Conditions
//
// The registry is a closed set of five binary predicates: eq, neq, gt, gte
// and contains. gt and gte order numbers numerically and strings
// lexicographically; operands of mixed type are simply never satisfied.
package engine
