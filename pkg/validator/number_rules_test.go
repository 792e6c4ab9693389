package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/validator"
)

func TestIsInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain digits", "123", true},
		{"negative", "-123", true},
		{"explicit plus", "+1", true},
		{"leading zeros", "007", true},
		{"empty string", "", false},
		{"sign only", "-", false},
		{"plus only", "+", false},
		{"double sign", "--1", false},
		{"decimal point", "12.3", false},
		{"inner space", "1 2", false},
		{"trailing sign", "12-", false},
		{"letters", "abc", false},
		{"non-ascii digits", "١٢٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.IsInteger(tt.input))
		})
	}
}

func TestIsNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"digits", "042", true},
		{"zero", "0", true},
		{"negative", "-1", false},
		{"plus sign", "+1", false},
		{"empty", "", false},
		{"decimal", "1.0", false},
		{"whitespace", " 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.IsNatural(tt.input))
		})
	}
}

func TestIsDecimal(t *testing.T) {
	t.Parallel()

	valid := []string{"3.14", "-2", "+2", "0", "1.", ".5", "-.5", "1e10", "2.5E-3", "1e+2", " 42", "42 ", "\t7\n"}
	invalid := []string{"", " ", "abc", ".", "-", "1.2.3", "1e", "e5", "0x1A", "inf", "NaN", "1_000", "1,5", "12abc"}

	for _, v := range valid {
		assert.True(t, validator.IsDecimal(v), "should be decimal: %q", v)
	}
	for _, v := range invalid {
		assert.False(t, validator.IsDecimal(v), "should not be decimal: %q", v)
	}
}

func TestIsDecimal_BroaderThanInteger(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "-17", "+3", "123456789012345678901234567890"} {
		require.True(t, validator.IsInteger(v))
		assert.True(t, validator.IsDecimal(v), "integer %q should also be decimal", v)
	}
}

func TestNumberRules(t *testing.T) {
	t.Run("valid values pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidInteger("adjustment", "-5"),
			validator.ValidNatural("quantity", "12"),
			validator.ValidDecimal("price", "19.99"),
		)
		assert.NoError(t, err)
	})

	t.Run("invalid values carry translation keys", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidInteger("adjustment", "1.5"),
			validator.ValidNatural("quantity", "-12"),
			validator.ValidDecimal("price", "free"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, "validation.integer", errs[0].TranslationKey)
		assert.Equal(t, "validation.natural", errs[1].TranslationKey)
		assert.Equal(t, "validation.decimal", errs[2].TranslationKey)
		assert.Equal(t, "price", errs[2].TranslationValues["field"])
	})
}
