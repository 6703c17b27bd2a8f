package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

func TestSchematicLoaded(t *testing.T) {
	t.Run("with analysis", func(t *testing.T) {
		grid := domain.GridFromLines([]string{"1*"})
		msg := SchematicLoaded{Grid: grid, Analysis: &domain.Analysis{PartNumberSum: 1}}

		assert.Equal(t, 1, msg.Grid.Rows())
		assert.Equal(t, 1, msg.Analysis.PartNumberSum)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := SchematicLoaded{Err: domain.ErrNotFound}

		assert.Nil(t, msg.Grid)
		assert.ErrorIs(t, msg.Err, domain.ErrNotFound)
	})
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}

	assert.Equal(t, err, msg.Err)
}
