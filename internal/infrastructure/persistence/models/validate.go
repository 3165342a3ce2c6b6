package models

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field, named by its json key
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by Validate. It matches shared.ErrInvalidInput
// under errors.Is.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return shared.ErrInvalidInput
}

var (
	validate   *validator.Validate
	validateMu sync.RWMutex
	// Opt instantiations already registered as custom types
	optTypes = map[reflect.Type]bool{}
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("db"), ",", 2)[0]
		}
		return name
	})
	_ = validate.RegisterValidation("crm_enum", validateEnum)
	_ = validate.RegisterValidation("crm_parent", validateParent)
}

// validateEnum accepts any value whose type reports membership through IsValid
func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	if e, ok := field.Interface().(interface{ IsValid() bool }); ok {
		return e.IsValid()
	}
	return false
}

func validateParent(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, ok := crm.ParentType(fl.Field().String()).ParentTable()
	return ok
}

// optValue hands the validator the value held by an Opt. An unset Opt
// validates as absent.
func optValue(field reflect.Value) any {
	if opt, ok := field.Interface().(optional); ok {
		if v, set := opt.columnValue(); set {
			return v
		}
	}
	return nil
}

// registerOptTypes registers every Opt field type of t with the validator
func registerOptTypes(t reflect.Type) {
	validateMu.RLock()
	missing := false
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i).Type
		if IsOpt(ft) && !optTypes[ft] {
			missing = true
			break
		}
	}
	validateMu.RUnlock()
	if !missing {
		return
	}

	validateMu.Lock()
	defer validateMu.Unlock()
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i).Type
		if !IsOpt(ft) || optTypes[ft] {
			continue
		}
		validate.RegisterCustomTypeFunc(optValue, reflect.Zero(ft).Interface())
		optTypes[ft] = true
	}
}

// Validate checks an Insert or Update shape: required columns, enum
// membership, parent types and e-mail format.
func Validate(shape any) error {
	t := reflect.TypeOf(shape)
	if t == nil {
		return shared.ErrInvalidInput
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return shared.ErrInvalidInput
	}
	registerOptTypes(t)

	validateMu.RLock()
	err := validate.Struct(shape)
	validateMu.RUnlock()
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "crm_enum":
		return "Not a value of the enum"
	case "crm_parent":
		return "Unknown parent type"
	default:
		return "Invalid value"
	}
}
