// Package params turns typed request parameters into query strings after
// checking them locally, so invalid input never reaches the network.
package params

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report the wire name of a field, not the Go name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"url", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// Validate checks v against its `validate` struct tags. A nil pointer is
// valid. Failures are reported as *apierrors.InvalidArgumentError for the
// first offending field.
func Validate(v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &apierrors.InvalidArgumentError{Field: fe.Field(), Reason: reason(fe)}
	}
	return &apierrors.InvalidArgumentError{Field: "params", Reason: err.Error()}
}

// Encode validates v and encodes it as query values using its `url` tags.
// Fields tagged omitempty with zero values are left out.
func Encode(v any) (url.Values, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	if v == nil {
		return url.Values{}, nil
	}
	values, err := query.Values(v)
	if err != nil {
		return nil, &apierrors.InvalidArgumentError{Field: "params", Reason: err.Error()}
	}
	return values, nil
}

// Segment validates and escapes a single path segment such as a collection
// symbol or a mint address.
func Segment(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &apierrors.InvalidArgumentError{Field: field, Reason: "must not be empty"}
	}
	return url.PathEscape(value), nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is not set", fe.Param())
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
