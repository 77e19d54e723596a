package filters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/services"
)

func TestDefaultRegistry_PlainTextLineBreaks(t *testing.T) {
	path := writeFile(t, "notes.txt", "First line\nstill first.\n\nSecond paragraph.\r\n\r\nThird.\n")
	registry := NewDefaultRegistry(domain.FilterSettings{})

	tests := []struct {
		name      string
		lineBreak string
		want      string
	}{
		{"crlf", "\r\n", "First line\nstill first.\r\nSecond paragraph.\r\nThird."},
		{"lf", "\n", "First line\nstill first.\nSecond paragraph.\nThird."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewExtractorService(registry, services.WithLineBreak(tt.lineBreak))
			result, err := svc.Extract(context.Background(), path, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Text)
			assert.Equal(t, 3, result.Chunks)
		})
	}
}
