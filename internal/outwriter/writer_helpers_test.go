package outwriter

import (
	"bytes"
	"testing"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{
			name:      "precision 2",
			precision: 2,
			value:     0.61803,
			expected:  "0.62",
		},
		{
			name:      "precision 1",
			precision: 1,
			value:     0.75,
			expected:  "0.8",
		},
		{
			name:      "precision 4",
			precision: 4,
			value:     0.61803,
			expected:  "0.6180",
		},
		{
			name:      "negative value",
			precision: 2,
			value:     -0.567,
			expected:  "-0.57",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]any{"score": 0.5})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"score\": 0.5\n}\n", buf.String())
}

func TestSectionTitle(t *testing.T) {
	withEmoji := &contract.Config{UseEmojis: true}
	without := &contract.Config{UseEmojis: false}

	assert.Equal(t, "📈 Title", sectionTitle(withEmoji, "📈", "Title"))
	assert.Equal(t, "Title", sectionTitle(without, "📈", "Title"))
	assert.Equal(t, "Title", sectionTitle(withEmoji, "", "Title"))
}

func TestLabelFunc(t *testing.T) {
	plain := labelFunc(&contract.Config{UseColors: false})
	assert.Equal(t, contract.CriticalValue, plain(0.9))

	colored := labelFunc(&contract.Config{UseColors: true})
	assert.Contains(t, colored(0.9), contract.CriticalValue)
}
