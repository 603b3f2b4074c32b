package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds request bodies read by Decode.
const MaxBodyBytes = 1 << 20

var (
	validate = newValidator()
	decoder  = newDecoder()
)

// timeLayouts are accepted for time fields in forms and query strings.
// datetime-local and date inputs post the last two.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return parseTime(vals[0])
	}, time.Time{})
	// Checkboxes post "on".
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		switch vals[0] {
		case "on":
			return true, nil
		case "":
			return false, nil
		}
		return strconv.ParseBool(vals[0])
	}, false)
	return d
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// FieldErrors maps input field names to what is wrong with them.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation error: %d invalid field(s)", len(e))
}

// Decode reads a JSON or form body into v and validates it.
func Decode(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		return Validate(v)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	return decodeValues(r.PostForm, v)
}

// DecodeQuery reads the URL query into v and validates it.
func DecodeQuery(r *http.Request, v any) error {
	return decodeValues(r.URL.Query(), v)
}

func decodeValues(values url.Values, v any) error {
	if err := decoder.Decode(v, values); err != nil {
		var decodeErrs form.DecodeErrors
		if errors.As(err, &decodeErrs) {
			fields := make(FieldErrors, len(decodeErrs))
			for name := range decodeErrs {
				fields[name] = "invalid"
			}
			return fields
		}
		return fmt.Errorf("invalid input: %w", err)
	}
	return Validate(v)
}

// Validate checks v's validate tags. Failures come back as FieldErrors.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation error: %w", err)
	}
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[fe.Field()] = msg
	}
	return fields
}

// Fields returns the per-field problems carried by err, if any.
func Fields(err error) (FieldErrors, bool) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		return fields, true
	}
	return nil, false
}

// ID reads a positive integer URL parameter.
func ID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("missing required %s", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// WantsJSON reports whether the caller expects JSON rather than a page.
func WantsJSON(r *http.Request) bool {
	return isJSON(r) || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
