package checkout_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		Name:       "Asha Rao",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		PostalCode: "560001",
		Country:    "India",
	}
}

func TestValidate(t *testing.T) {
	v := checkout.NewValidator()

	t.Run("Success - Valid Form", func(t *testing.T) {
		errs := v.Validate(validShipping())

		assert.Empty(t, errs)
	})

	t.Run("Failure - Blank Name And Five Digit Postal Code", func(t *testing.T) {
		info := models.ShippingInfo{Name: "", Address: "A", City: "B", PostalCode: "12345", Country: "India"}

		errs := v.Validate(info)

		assert.Equal(t, checkout.FieldErrors{
			"name":        "Name is required",
			"postal_code": "Invalid Postal Code",
		}, errs)
	})

	t.Run("Failure - Whitespace Only Fields Are Blank", func(t *testing.T) {
		info := validShipping()
		info.Address = "   "
		info.City = "\t\n"

		errs := v.Validate(info)

		assert.Equal(t, "Address is required", errs["address"])
		assert.Equal(t, "City is required", errs["city"])
		assert.Len(t, errs, 2)
	})

	t.Run("Failure - Every Field Missing", func(t *testing.T) {
		errs := v.Validate(models.ShippingInfo{})

		assert.Equal(t, checkout.FieldErrors{
			"name":        "Name is required",
			"address":     "Address is required",
			"city":        "City is required",
			"postal_code": "Postal Code is required",
			"country":     "Country is required",
		}, errs)
	})

	postalCases := []struct {
		name  string
		code  string
		valid bool
	}{
		{"six digits", "110001", true},
		{"six digits with surrounding spaces", " 110001 ", true},
		{"seven digits", "1100011", false},
		{"letters", "11A001", false},
		{"signed", "+11000", false},
		{"decimal", "1100.1", false},
		{"inner space", "110 01", false},
	}

	for _, tc := range postalCases {
		t.Run("Postal Code - "+tc.name, func(t *testing.T) {
			info := validShipping()
			info.PostalCode = tc.code

			errs := v.Validate(info)

			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, "Invalid Postal Code", errs["postal_code"])
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	v := checkout.NewValidator()

	t.Run("Success - Strips Markup And Trims", func(t *testing.T) {
		info := validShipping()
		info.Name = "  <b>Asha</b> Rao "
		info.Address = "Flat 4 & 5, <i>MG Road</i>"

		clean := v.Sanitize(info)

		assert.Equal(t, "Asha Rao", clean.Name)
		assert.Equal(t, "Flat 4 & 5, MG Road", clean.Address)
		assert.Equal(t, "560001", clean.PostalCode)
	})

	t.Run("Failure - Markup Only Field Is Blank", func(t *testing.T) {
		info := validShipping()
		info.Name = "<br/>"

		errs := v.Validate(info)

		assert.Equal(t, "Name is required", errs["name"])
	})

	t.Run("Success - Escaped Markup Does Not Come Back", func(t *testing.T) {
		info := validShipping()
		info.Name = "&lt;script&gt;alert(1)&lt;/script&gt;"
		info.Address = "&amp;lt;b&amp;gt;12 MG Road&amp;lt;/b&amp;gt;"

		clean := v.Sanitize(info)

		assert.NotContains(t, clean.Name, "<")
		assert.NotContains(t, clean.Address, "<")
		assert.Equal(t, "12 MG Road", clean.Address)
		assert.Equal(t, "Name is required", v.Validate(info)["name"])
	})

	t.Run("Success - Sanitize Is Idempotent", func(t *testing.T) {
		inputs := []string{
			"  <b>Asha</b> Rao ",
			"Flat 4 & 5, <i>MG Road</i>",
			"&lt;script&gt;alert(1)&lt;/script&gt;",
			"&amp;lt;em&amp;gt;Pune",
			"Tom &amp; Jerry",
		}

		for _, in := range inputs {
			info := validShipping()
			info.Name = in

			once := v.Sanitize(info)
			twice := v.Sanitize(once)

			assert.Equal(t, once, twice, in)
		}
	})
}
