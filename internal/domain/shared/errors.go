package shared

// DomainError is a classified failure. Errors with the same Code match under
// errors.Is, so a sentinel still matches after Wrap added detail to it.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	cause   error
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// Wrap returns a copy of e carrying detail and the underlying cause.
func (e *DomainError) Wrap(cause error, detail string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Detail: detail, cause: cause}
}

var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists   = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidKey      = NewDomainError("INVALID_KEY", "Key does not match the primary key of the relation")
	ErrUnknownRelation = NewDomainError("UNKNOWN_RELATION", "No table or view with this name")
	ErrUnknownTable    = NewDomainError("UNKNOWN_TABLE", "No table with this name")
	ErrUnknownEnum     = NewDomainError("UNKNOWN_ENUM", "No enum with this name")
	ErrUnknownColumn   = NewDomainError("UNKNOWN_COLUMN", "No column with this name")
	ErrEmptyChange     = NewDomainError("EMPTY_CHANGE", "No columns to write")
)
