package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.RequiredString("city", "London")))

	for _, v := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.RequiredString("city", v))
		require.Error(t, err, "value %q should be rejected", v)
		assert.Equal(t, "validation.required", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestMaxLenString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.MaxLenString("company", strings.Repeat("a", 10), 10)))

	err := validator.Apply(validator.MaxLenString("company", strings.Repeat("a", 11), 10))
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "must be at most 10 characters long", errs[0].Message)
	assert.Equal(t, 10, errs[0].TranslationValues["max"])
}
