package ems

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/ihsanems/portal/core"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func Test_passwordPolicy(t *testing.T) {
	validate := newValidator(t)

	newAccount := func(pwd string) CreateStudentAccount {
		return CreateStudentAccount{Phone: "01712345678", Password: pwd}
	}

	tests := []struct {
		name    string
		account CreateStudentAccount
		wantTag string // "" = valid
	}{
		{name: "valid", account: newAccount("G00d#pass")},
		{name: "too short", account: newAccount("G0#d"), wantTag: pwdMinLenTag},
		{name: "whitespace", account: newAccount("G00d #pass"), wantTag: pwdNoSpaceTag},
		{name: "all numeric", account: newAccount("12345678"), wantTag: pwdNotAllNumTag},
		{name: "no special char", account: newAccount("G00dpass"), wantTag: pwdComplexityTag},
		{name: "no uppercase", account: newAccount("g00d#pass"), wantTag: pwdComplexityTag},
		{
			name:    "similar to phone",
			account: CreateStudentAccount{Phone: "G00d#pass1", Password: "G00d#pass1"},
			wantTag: pwdAttrSimTag,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.account)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors; got %v", err)
			}
			tags := make([]string, 0, len(vErrs))
			for _, vErr := range vErrs {
				tags = append(tags, vErr.Tag())
			}
			assert.Contains(t, tags, tt.wantTag)
		})
	}
}

func Test_phoneOrEmailRequired(t *testing.T) {
	validate := newValidator(t)

	err := validate.Struct(CreateStudentAccount{Password: "G00d#pass"})
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors; got %v", err)
	}
	tags := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		tags = append(tags, vErr.Tag())
	}
	assert.Contains(t, tags, phoneOrEmailTag)

	assert.NoError(t, validate.Struct(CreateStudentAccount{Email: "a@b.cd", Password: "G00d#pass"}))
}

func Test_roleValidation(t *testing.T) {
	validate := newValidator(t)

	usr := NewUser{Name: "Amina", Phone: "01712345678", Role: "Owner", Password: "G00d#pass"}
	assert.NoError(t, validate.Struct(usr))

	usr.Role = "Superhero"
	err := validate.Struct(usr)
	assert.Error(t, err)
}

func Test_updateUserSkipsPasswordWhenEmpty(t *testing.T) {
	validate := newValidator(t)

	assert.NoError(t, validate.Struct(UpdateUser{Name: "Amina"}))
	assert.Error(t, validate.Struct(UpdateUser{Name: "Amina", Password: "short"}))
}

func Test_IsAdminRole(t *testing.T) {
	for _, role := range AdminRoles {
		assert.True(t, IsAdminRole(role))
	}
	assert.False(t, IsAdminRole(RoleStudent))
	assert.False(t, IsAdminRole(RoleGuardian))
	assert.False(t, IsAdminRole(""))
}
