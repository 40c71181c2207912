package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso layout", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"day first layout", "15-03-2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"slash layout", "15/3/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"excel serial", "45000", time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := parseDate("")
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := parseDate("next tuesday")
		assert.Error(t, err)
	})
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 1234.5, parseFloat("1,234.5"))
	assert.Equal(t, 0.0, parseFloat(""))
	assert.Equal(t, 0.0, parseFloat("n/a"))
}

func TestCell(t *testing.T) {
	cols := map[string]int{"hs_code": 0, "country": 2}
	row := []string{" 850440 ", "x"}

	assert.Equal(t, "850440", cell(row, cols, "hs_code"))
	// column beyond the row's width reads as empty
	assert.Equal(t, "", cell(row, cols, "country"))
	assert.Equal(t, "", cell(row, cols, "missing"))
}
