package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Zero permanece zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "Arredonda para cima",
			input:    13.336,
			expected: 13.34,
		},
		{
			name:     "Arredonda para baixo",
			input:    13.333,
			expected: 13.33,
		},
		{
			name:     "Valor negativo",
			input:    -87.8048,
			expected: -87.8,
		},
		{
			name:     "Inteiro não é alterado",
			input:    45,
			expected: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}
