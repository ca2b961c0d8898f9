package validation

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestValidateRequired(t *testing.T) {
	v := New()

	assert.False(t, v.ValidateRequired("", "make", "Make"))
	assert.Equal(t, "Make is required", v.GetError("make"))

	assert.False(t, v.ValidateRequired("   ", "make", "Make"))
	assert.True(t, v.HasError("make"))

	// Успешная проверка снимает ошибку по полю
	assert.True(t, v.ValidateRequired("Ford", "make", "Make"))
	assert.False(t, v.HasError("make"))
	assert.True(t, v.IsValid())
}

func TestValidateEmail(t *testing.T) {
	v := New()

	assert.False(t, v.ValidateEmail("", "email"))
	assert.Equal(t, "Email is required", v.GetError("email"))

	assert.False(t, v.ValidateEmail("not-an-email", "email"))
	assert.Equal(t, "Please enter a valid email address", v.GetError("email"))

	assert.False(t, v.ValidateEmail("missing@tld", "email"))

	assert.True(t, v.ValidateEmail("garage@example.co.uk", "email"))
	assert.True(t, v.IsValid())
}

func TestValidateYearBoundaries(t *testing.T) {
	// Граница: [1900, текущий год + 1]
	cases := []struct {
		year int
		ok   bool
	}{
		{1899, false},
		{1900, true},
		{2000, true},
		{2027, true},
		{2028, false},
		{0, false},
	}

	for _, tc := range cases {
		v := New()
		assert.Equal(t, tc.ok, v.ValidateYear(tc.year, "year", testNow), "year %d", tc.year)
		if !tc.ok {
			assert.Equal(t, "Year must be between 1900 and 2027", v.GetError("year"))
		}
	}
}

func TestValidateYearProperty(t *testing.T) {
	for year := 1890; year <= 2040; year++ {
		v := New()
		expected := year >= 1900 && year <= testNow.Year()+1
		assert.Equal(t, expected, v.ValidateYear(year, "year", testNow), "year %d", year)
	}
}

func TestValidateMileage(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"999999", true},
		{"1000000", false},
		{"-1", false},
		{"abc", false},
		{"", false},
		{" 42000 ", true},
	}

	for _, tc := range cases {
		v := New()
		assert.Equal(t, tc.ok, v.ValidateMileage(tc.value, "mileage"), "mileage %q", tc.value)
		if !tc.ok {
			assert.Equal(t, "Mileage must be between 0 and 999,999", v.GetError("mileage"))
		}
	}
}

func TestValidateMileageProperty(t *testing.T) {
	for _, m := range []int{-100, -1, 0, 1, 60000, 999999, 1000000} {
		v := New()
		expected := m >= 0 && m <= 999999
		assert.Equal(t, expected, v.ValidateMileage(strconv.Itoa(m), "mileage"), "mileage %d", m)
	}
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
		msg   string
	}{
		{"", false, "Registration is required"},
		{"  ", false, "Registration is required"},
		{"A", false, "Registration must be 2-10 characters"},
		{"AB", true, ""},
		{"AB12CDE", true, ""},
		{"ABCDEFGHIJ", true, ""},
		{"ABCDEFGHIJK", false, "Registration must be 2-10 characters"},
	}

	for _, tc := range cases {
		v := New()
		assert.Equal(t, tc.ok, v.ValidateRegistration(tc.value, "registration"), "registration %q", tc.value)
		if !tc.ok {
			assert.Equal(t, tc.msg, v.GetError("registration"))
		}
	}
}

func TestErrorsReturnsCopy(t *testing.T) {
	v := New()
	v.ValidateRequired("", "make", "Make")

	errs := v.Errors()
	errs["make"] = "mutated"

	assert.Equal(t, "Make is required", v.GetError("make"))
	assert.Equal(t, map[string]string{"make": "Make is required"}, v.Errors())
}

func TestAccumulatesErrorsAcrossFields(t *testing.T) {
	v := New()
	v.ValidateRequired("", "make", "Make")
	v.ValidateRequired("", "model", "Model")
	v.ValidateYear(1850, "year", testNow)

	assert.False(t, v.IsValid())
	assert.Len(t, v.Errors(), 3)

	for field, msg := range v.Errors() {
		assert.NotEmpty(t, msg, fmt.Sprintf("field %s", field))
	}
}
