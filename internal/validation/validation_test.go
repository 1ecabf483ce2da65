package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCafe() *dto.CafeInput {
	return &dto.CafeInput{
		Name:        "Mocha Bar",
		Description: "A cozy place with great coffee.",
		Location:    "Orchard",
	}
}

func validEmployee() *dto.EmployeeInput {
	return &dto.EmployeeInput{
		Name:      "Jane Tan",
		Email:     "jane@example.com",
		Phone:     "98765432",
		Gender:    "Female",
		StartDate: "2024-01-15",
		CafeID:    "3f1c2b8e-9a4d-4c6e-8b1f-2d7a5e9c0b13",
	}
}

func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestCafe_Valid(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Cafe(validCafe()))
}

func TestCafe_NameLengthBounds(t *testing.T) {
	v := validation.New()

	for _, name := range []string{"Sixchr", "Tenchars!!"} {
		in := validCafe()
		in.Name = name
		assert.NoError(t, v.Cafe(in), "name %q", name)
	}

	tests := []struct {
		name string
		want string
	}{
		{"Fivec", "String must contain at least 6 character(s)"},
		{"Elevenchars", "String must contain at most 10 character(s)"},
		{"", "String must contain at least 6 character(s)"},
	}
	for _, tt := range tests {
		in := validCafe()
		in.Name = tt.name
		fe := fieldErrors(t, v.Cafe(in))
		assert.Equal(t, []string{tt.want}, fe["name"], "name %q", tt.name)
	}
}

func TestCafe_CollectsAllViolations(t *testing.T) {
	v := validation.New()

	in := &dto.CafeInput{
		Name:        "abc",
		Description: strings.Repeat("d", 257),
		Location:    "",
	}
	fe := fieldErrors(t, v.Cafe(in))

	assert.Len(t, fe, 3)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "description")
	assert.Contains(t, fe, "location")
}

func TestCafe_LogoRules(t *testing.T) {
	v := validation.New()

	in := validCafe()
	in.Logo = &dto.UploadedFile{Filename: "logo.png", ContentType: "image/png", Size: 2_000_000}
	assert.NoError(t, v.Cafe(in))

	in.Logo = &dto.UploadedFile{Filename: "logo.jpg", ContentType: "image/jpg", Size: 10}
	assert.NoError(t, v.Cafe(in))

	in.Logo = &dto.UploadedFile{Filename: "logo.gif", ContentType: "image/gif", Size: 2_000_001}
	fe := fieldErrors(t, v.Cafe(in))
	assert.ElementsMatch(t, []string{
		"Max image size is 2MB.",
		"Only .jpg, .jpeg, .png and .webp formats are supported.",
	}, fe["logo"])
	assert.Len(t, fe, 1)
}

func TestEmployee_Valid(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Employee(validEmployee()))
}

func TestEmployee_Phone(t *testing.T) {
	v := validation.New()

	tests := []struct {
		phone string
		ok    bool
	}{
		{"98765432", true},
		{"81234567", true},
		{"12345678", false},
		{"987654", false},
		{"987654321", false},
		{"9876543a", false},
	}
	for _, tt := range tests {
		in := validEmployee()
		in.Phone = tt.phone
		err := v.Employee(in)
		if tt.ok {
			assert.NoError(t, err, "phone %q", tt.phone)
			continue
		}
		fe := fieldErrors(t, err)
		assert.Contains(t, fe, "phone", "phone %q", tt.phone)
	}
}

func TestEmployee_Gender(t *testing.T) {
	v := validation.New()

	for _, g := range []string{"male", "Other", ""} {
		in := validEmployee()
		in.Gender = g
		fe := fieldErrors(t, v.Employee(in))
		assert.Equal(t, []string{"Invalid selection"}, fe["gender"], "gender %q", g)
	}
}

func TestEmployee_StartDatePatternOnly(t *testing.T) {
	v := validation.New()

	in := validEmployee()
	in.StartDate = "2024-13-40"
	assert.NoError(t, v.Employee(in))

	for _, d := range []string{"15-01-2024", "2024/01/15", "2024-1-5", ""} {
		in := validEmployee()
		in.StartDate = d
		fe := fieldErrors(t, v.Employee(in))
		assert.Equal(t, []string{"Invalid date format (format should be YYYY-MM-DD)"}, fe["startDate"])
	}
}

func TestEmployee_CafeIDFormatOnly(t *testing.T) {
	v := validation.New()

	// Формат корректный, такого кафе нет: проверка проходит
	in := validEmployee()
	in.CafeID = "00000000-0000-4000-8000-000000000000"
	assert.NoError(t, v.Employee(in))

	in.CafeID = "not-an-id"
	fe := fieldErrors(t, v.Employee(in))
	assert.Equal(t, []string{"Invalid cafe id format"}, fe["cafeId"])
}

func TestEmployee_CollectsAllViolations(t *testing.T) {
	v := validation.New()

	fe := fieldErrors(t, v.Employee(&dto.EmployeeInput{Email: "nope"}))

	for _, field := range []string{"name", "email", "phone", "gender", "startDate", "cafeId"} {
		assert.Contains(t, fe, field)
	}
	assert.Equal(t, []string{"Please provide a valid email"}, fe["email"])
}

func TestEmployee_EmptyValuesGetFormatMessages(t *testing.T) {
	v := validation.New()

	in := validEmployee()
	in.Email = ""
	in.CafeID = ""
	fe := fieldErrors(t, v.Employee(in))

	assert.Equal(t, []string{"Please provide a valid email"}, fe["email"])
	assert.Equal(t, []string{"Invalid cafe id format"}, fe["cafeId"])
	assert.Len(t, fe, 2)
}

func TestDecodeErrorsReplaceRuleMessages(t *testing.T) {
	v := validation.New()

	in := validEmployee()
	in.Phone = ""
	in.DecodeErrors = map[string]string{"phone": validation.TypeMessage("number")}
	fe := fieldErrors(t, v.Employee(in))
	assert.Equal(t, []string{"Expected string, received number"}, fe["phone"])
	assert.Len(t, fe, 1)

	// ошибка разбора отклоняет запрос, даже если остальные правила прошли
	cafe := validCafe()
	cafe.DecodeErrors = map[string]string{"location": validation.RequiredMessage}
	fe = fieldErrors(t, v.Cafe(cafe))
	assert.Equal(t, []string{"Required"}, fe["location"])
}

func TestFieldErrors_Error(t *testing.T) {
	fe := validation.FieldErrors{"phone": {"x"}, "email": {"y"}}
	assert.Equal(t, "validation failed: email, phone", fe.Error())
}
