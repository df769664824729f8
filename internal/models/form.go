package models

// LoginForm holds the cleaned login form fields.
type LoginForm struct {
	Username string `json:"username" validate:"required,nonull,max=150"`
	Password string `json:"password" validate:"required,nonull"`
}

// LoginRequest represents the JSON body posted to the form routes
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: testuser
	Username string `json:"username"`

	// Password
	// required: true
	// example: testpwd
	Password string `json:"password"`
}

// Error types reported in the "error" member of a failed form response.
const (
	ErrorTypeSchema     = "schema"
	ErrorTypeValidation = "validation"
)

// ErrorType tags a failed form response.
type ErrorType struct {
	Type string `json:"type"`
}

// SchemaError is a single schema contract violation.
type SchemaError struct {
	Type  string   `json:"type"`  // missing, string_type
	Loc   []string `json:"loc"`   // path to the field
	Msg   string   `json:"msg"`   // human readable message
	Input any      `json:"input"` // offending input
}

// FormError is a single field-level validation failure.
type FormError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FormErrors maps a field name to its validation failures.
type FormErrors map[string][]FormError

// SchemaErrorResponse is returned when the payload breaks the schema contract
// swagger:model SchemaErrorResponse
type SchemaErrorResponse struct {
	Error  ErrorType     `json:"error"`
	Errors []SchemaError `json:"errors"`
}

// ValidationErrorResponse is returned when form validation fails
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Error  ErrorType  `json:"error"`
	Errors FormErrors `json:"errors"`
}

// CustomResponse is the success body of the custom route
// swagger:model CustomResponse
type CustomResponse struct {
	// example: foo
	Extra string `json:"extra"`
}

// SimpleFormResponse is the body of the simplified form route.
// Errors is an empty list on success and a FormErrors object on failure.
// swagger:model SimpleFormResponse
type SimpleFormResponse struct {
	Errors any `json:"errors"`
}
