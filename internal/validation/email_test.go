package validation_test

import (
	"testing"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  error
	}{
		{"user@company.io", nil},
		{"hr@training.example.org", nil},
		{"user@gmail.com", domain.ErrRestrictedEmailDomain},
		{"User@GMAIL.COM", domain.ErrRestrictedEmailDomain},
		{"someone@protonmail.com", domain.ErrRestrictedEmailDomain},
		{"someone@tutanota.com", domain.ErrRestrictedEmailDomain},
		{"someone@engineer.com", domain.ErrRestrictedEmailDomain},
		{"someone@icloud.com", domain.ErrRestrictedEmailDomain},
		{"someone@notgmail.com", nil},
		{"owner@mail.gmail.com", domain.ErrRestrictedEmailDomain},
		{"owner@eu.Yahoo.com", domain.ErrRestrictedEmailDomain},
		{"owner@gmail.com.acme.io", nil},
		{"not-an-email", domain.ErrInvalidEmailFormat},
		{"two words@company.io", domain.ErrInvalidEmailFormat},
		{"user@localhost", domain.ErrInvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := validation.ValidateEmailDomain(tt.email)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFormatAndDomainMessagesDiffer(t *testing.T) {
	formatErr := validation.ValidateEmailDomain("not-an-email")
	domainErr := validation.ValidateEmailDomain("user@gmail.com")
	require.Error(t, formatErr)
	require.Error(t, domainErr)
	assert.NotEqual(t, formatErr.Error(), domainErr.Error())
}

func TestContactEmailAllowsPersonalDomains(t *testing.T) {
	assert.NoError(t, validation.ValidateEmailFormat("owner@gmail.com"))
	assert.ErrorIs(t, validation.ValidateEmailFormat("owner"), domain.ErrInvalidEmailFormat)
}

func TestStruct(t *testing.T) {
	type input struct {
		Email       string `json:"email" validate:"required,email_format,business_email"`
		ContactMail string `json:"contactMail" validate:"required,email_format"`
		Name        string `json:"organizationName" validate:"required"`
	}
	v := validation.New()

	t.Run("valid", func(t *testing.T) {
		err := validation.Struct(v, input{Email: "a@acme.io", ContactMail: "b@gmail.com", Name: "Acme"})
		assert.NoError(t, err)
	})

	t.Run("restricted login email", func(t *testing.T) {
		err := validation.Struct(v, input{Email: "a@yahoo.com", ContactMail: "b@gmail.com", Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrRestrictedEmailDomain)
	})

	t.Run("bad contact email format", func(t *testing.T) {
		err := validation.Struct(v, input{Email: "a@acme.io", ContactMail: "b", Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat)
	})

	t.Run("missing field uses json name", func(t *testing.T) {
		err := validation.Struct(v, input{Email: "a@acme.io", ContactMail: "b@acme.io"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "organizationName is required", err.Error())
	})
}
