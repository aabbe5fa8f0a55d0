package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida no formato ISO", func(t *testing.T) {
		date, err := ParseDate("2025-06-01")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("String vazia retorna data zero", func(t *testing.T) {
		date, err := ParseDate("")

		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido retorna erro", func(t *testing.T) {
		date, err := ParseDate("01/06/2025")

		assert.Error(t, err)
		assert.Nil(t, date)
	})
}
