package checkout

import (
	"errors"
	"html"
	"reflect"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// FieldErrors maps a shipping field's JSON name to a user-facing message.
// An empty map means the form is valid.
type FieldErrors map[string]string

var fieldLabels = map[string]string{
	"name":        "Name",
	"address":     "Address",
	"city":        "City",
	"postal_code": "Postal Code",
	"country":     "Country",
}

type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

// NewValidator is safe to share across sessions.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

// maxCleanPasses bounds the strip/unescape loop; each pass peels one layer of
// escaping, so real input settles in two or three.
const maxCleanPasses = 8

// clean strips markup, unescapes entities and repeats until the value stops
// changing, so escaped markup cannot survive as real markup.
func (v *Validator) clean(s string) string {
	for range maxCleanPasses {
		next := strings.TrimSpace(html.UnescapeString(v.policy.Sanitize(s)))
		if next == s {
			return next
		}
		s = next
	}

	return strings.TrimSpace(v.policy.Sanitize(s))
}

// Sanitize trims every field and strips any markup from it. It is idempotent.
func (v *Validator) Sanitize(info models.ShippingInfo) models.ShippingInfo {
	return models.ShippingInfo{
		Name:       v.clean(info.Name),
		Address:    v.clean(info.Address),
		City:       v.clean(info.City),
		PostalCode: v.clean(info.PostalCode),
		Country:    v.clean(info.Country),
	}
}

// Validate checks the sanitized form: every field is required and non-blank,
// and the postal code must be exactly six ASCII digits.
func (v *Validator) Validate(info models.ShippingInfo) FieldErrors {
	return v.check(v.Sanitize(info))
}

// check validates an already sanitized form.
func (v *Validator) check(clean models.ShippingInfo) FieldErrors {
	errs := FieldErrors{}

	err := v.validate.Struct(clean)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}

	return errs
}

func message(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	if fe.Tag() == "required" {
		return label + " is required"
	}

	return "Invalid " + label
}
