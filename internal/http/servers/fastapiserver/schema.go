package fastapiserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"apidemo/internal/domain/user"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so errors line up with the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// createUserBody is user.User with pointer fields, so that an absent key and
// an empty string stay distinguishable. `required` on a pointer only checks
// that the key was present.
type createUserBody struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

// FieldError is one entry of the 422 "detail" list.
type FieldError struct {
	Loc  []any  `json:"loc" swaggertype:"array,string" example:"body,email"`
	Msg  string `json:"msg" example:"field required"`
	Type string `json:"type" example:"value_error.missing"`
}

// RequestValidationError carries every problem found in a request body.
type RequestValidationError struct {
	Errors []FieldError
}

func (e *RequestValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		loc := make([]string, len(fe.Loc))
		for i, l := range fe.Loc {
			loc[i] = fmt.Sprint(l)
		}
		parts = append(parts, strings.Join(loc, " -> ")+": "+fe.Msg)
	}
	noun := "errors"
	if len(e.Errors) == 1 {
		noun = "error"
	}
	return fmt.Sprintf("%d validation %s for request: %s", len(e.Errors), noun, strings.Join(parts, "; "))
}

const (
	errTypeMissing    = "value_error.missing"
	errTypeJSONDecode = "value_error.jsondecode"
	errTypeDict       = "type_error.dict"
	errTypeStr        = "type_error.str"
	errTypeNone       = "type_error.none.not_allowed"
)

func bodyError(msg, typ string, loc ...any) FieldError {
	return FieldError{Loc: append([]any{"body"}, loc...), Msg: msg, Type: typ}
}

func invalid(errs ...FieldError) error {
	return &RequestValidationError{Errors: errs}
}

// DecodeUser turns a create-user request body into a User. It either
// returns a User with both fields set, or a *RequestValidationError listing
// every failing field in declaration order.
func DecodeUser(body []byte) (user.User, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return user.User{}, invalid(bodyError("field required", errTypeMissing))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return user.User{}, invalid(bodyError(syntaxErr.Error(), errTypeJSONDecode, syntaxErr.Offset))
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return user.User{}, invalid(bodyError("value is not a valid dict", errTypeDict))
		}
		return user.User{}, fmt.Errorf("decode body: %w", err)
	}
	if raw == nil {
		// a literal null body
		return user.User{}, invalid(bodyError("field required", errTypeMissing))
	}

	var b createUserBody
	fields := []struct {
		name string
		dst  **string
	}{
		{"name", &b.Name},
		{"email", &b.Email},
	}

	problems := make(map[string]FieldError, len(fields))
	for _, f := range fields {
		msg, ok := raw[f.name]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			problems[f.name] = bodyError("none is not an allowed value", errTypeNone, f.name)
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			problems[f.name] = bodyError("str type expected", errTypeStr, f.name)
			continue
		}
		*f.dst = &s
	}

	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return user.User{}, fmt.Errorf("validate body: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := problems[fe.Field()]; seen {
				continue
			}
			problems[fe.Field()] = fromValidator(fe)
		}
	}

	if len(problems) > 0 {
		list := make([]FieldError, 0, len(problems))
		for _, f := range fields {
			if p, ok := problems[f.name]; ok {
				list = append(list, p)
			}
		}
		return user.User{}, invalid(list...)
	}

	return user.User{Name: *b.Name, Email: *b.Email}, nil
}

func fromValidator(fe validator.FieldError) FieldError {
	if fe.Tag() == "required" {
		return bodyError("field required", errTypeMissing, fe.Field())
	}
	return bodyError(fe.Error(), "value_error."+fe.Tag(), fe.Field())
}
