package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/shopkit/pkg/logger"
)

func TestAttrHelpers(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("errors skips nil values", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
		attr := logger.Errors(nil, errors.New("boom"))
		assert.Equal(t, "errors", attr.Key)
		group := attr.Value.Group()
		assert.Len(t, group, 1)
		assert.Equal(t, "1", group[0].Key)
	})

	t.Run("group", func(t *testing.T) {
		attr := logger.Group("address", logger.Country("GB"), logger.Check("postcode"))
		assert.Equal(t, "address", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
	})

	t.Run("fields", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Fields(nil))
		attr := logger.Fields([]string{"email", "postcode"})
		assert.Equal(t, "fields", attr.Key)
		assert.Equal(t, []string{"email", "postcode"}, attr.Value.Any())
	})
}
