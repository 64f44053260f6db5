// Package types provides the request and response model types for the validator API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ValidateRequest is the body of POST /api/validate. JSON is a pointer so that
// an absent field can be told apart from an empty candidate string, which is
// still a legitimate input for the external validator to reject.
type ValidateRequest struct {
	JSON *string `json:"json" validate:"required"`
}

// Validate validates the ValidateRequest using the validator.
func (r *ValidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ValidationResult is the structured verdict returned by /api/validate.
// Errors is only populated when the external validator reported an error
// section; it marshals as an empty array rather than null.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// VisitorCount is the body of /api/visitor_count responses.
type VisitorCount struct {
	Count int64 `json:"count"`
}

// HealthStatus is the body of /api/health responses. The endpoint itself
// always answers 200; a missing Java runtime is reported as "degraded".
type HealthStatus struct {
	Status        string `json:"status"`
	JavaAvailable bool   `json:"java_available"`
	ValidatorPath string `json:"validator_path"`
}

// ExampleSet holds canned candidate strings for the front-end.
type ExampleSet struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// Examples returns the fixed example strings served by /api/examples.
// The sets are static; callers always receive the same content.
func Examples() ExampleSet {
	return ExampleSet{
		Valid: []string{
			`{"name": "John", "age": 30}`,
			`[1, 2, 3, 4, 5]`,
			`{"user": {"name": "Alice", "scores": [95, 87, 92]}}`,
			`{"pi": 3.14159, "active": true, "data": null}`,
			`[]`,
			`{}`,
		},
		Invalid: []string{
			`{name: "John"}`,
			`{'name': 'John'}`,
			`{"name": "John,}`,
			`{"name" "John"}`,
			`{"name": "John}`,
			`{{"nested": true}`,
			`[1, 2, 3,]`,
			`{"value": 007}`,
		},
	}
}
