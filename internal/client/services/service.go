// Package services contains the application flows of the streaming client:
// authentication (login/register/logout/session restore), profile lifecycle
// with favorites, and the movie catalog. Every remote call goes through the
// dispatcher; flows never build HTTP requests themselves.
package services

import (
	"context"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// apiClient is the dispatcher surface the flows depend on. The concrete
// implementation is api.Client; tests provide fakes.
type apiClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// newValidator builds a validator reporting field names by their JSON tags,
// so validation messages match the wire format the user knows.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage flattens validator errors into one displayable string.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email"
		case "min":
			msg = "is too short (minimum " + fe.Param() + ")"
		case "max":
			msg = "is too long (maximum " + fe.Param() + ")"
		case "uuid":
			msg = "must be a valid id"
		default:
			msg = "is invalid"
		}
		parts = append(parts, fe.Field()+" "+msg)
	}
	return strings.Join(parts, "; ")
}
