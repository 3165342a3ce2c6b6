package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginated(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := NewPaginated([]int{1, 2}, 41, 3, 20)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(41), p.Total)
		assert.Equal(t, 3, p.Page)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := NewPaginated([]int{}, 40, 1, 20)
		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("zero page size yields no pages", func(t *testing.T) {
		p := NewPaginated([]int{}, 10, 1, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext())
	})

	t.Run("has next", func(t *testing.T) {
		assert.True(t, NewPaginated([]int{1}, 41, 2, 20).HasNext())
		assert.False(t, NewPaginated([]int{1}, 41, 3, 20).HasNext())
	})
}

func TestFilter_Where(t *testing.T) {
	base := Filter{PageSize: 20}.Where("status", "active")
	f := base.Where("assigned_to", nil)

	assert.Equal(t, map[string]any{"status": "active", "assigned_to": nil}, f.Filters)
	assert.Len(t, base.Filters, 1, "original filter must not be mutated")
	assert.Equal(t, 20, f.PageSize)
}

func TestDomainError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := NewDomainError("CODE", "message")
		assert.Equal(t, "message", err.Error())
		assert.Equal(t, "CODE", err.Code)
	})

	t.Run("wrap keeps the code", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := ErrAlreadyExists.Wrap(cause, "policies_policy_number_key")

		assert.Equal(t, "Resource already exists: policies_policy_number_key", err.Error())
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, ErrAlreadyExists.Detail)
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("insert quotes: %w", ErrInvalidInput.Wrap(nil, "premium"))

		var de *DomainError
		assert.True(t, errors.As(err, &de))
		assert.Equal(t, "INVALID_INPUT", de.Code)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
