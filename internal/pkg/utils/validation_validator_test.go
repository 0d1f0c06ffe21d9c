package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cpfHolder struct {
	CPF string `validate:"cpf"`
}

type crmHolder struct {
	CRM string `validate:"crm"`
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"Plain eleven digits", "12345678901", true},
		{"Formatted with dots and dash", "123.456.789-01", true},
		{"Formatted with spaces", "123 456 789 01", true},
		{"Ten digits", "1234567890", false},
		{"Twelve digits", "123456789012", false},
		{"Letters only", "abcdefghijk", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&cpfHolder{CPF: tt.cpf})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateCRM(t *testing.T) {
	assert.NoError(t, ValidateStruct(&crmHolder{CRM: "CRM-SP 12345"}))
	assert.Error(t, ValidateStruct(&crmHolder{CRM: ""}))
	assert.Error(t, ValidateStruct(&crmHolder{CRM: "   "}))
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "12345678901", StripNonDigits("123.456.789-01"))
	assert.Equal(t, "", StripNonDigits("abc-def"))
	assert.Equal(t, "2024", StripNonDigits("year 2024!"))
}
