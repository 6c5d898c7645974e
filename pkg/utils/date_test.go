package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		since    string
		until    string
		validate func(t *testing.T, start, end time.Time, err error)
	}{
		{
			name: "Sem datas usa os últimos 30 dias fechados",
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-03-14", end.Format(DateLayout))
				assert.Equal(t, "2024-02-14", start.Format(DateLayout))
			},
		},
		{
			name:  "Intervalo explícito",
			since: "2024-01-01",
			until: "2024-01-31",
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-01-01", start.Format(DateLayout))
				assert.Equal(t, "2024-01-31", end.Format(DateLayout))
			},
		},
		{
			name:  "Apenas a data final completa o início pela janela padrão",
			until: "2024-01-30",
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-01-01", start.Format(DateLayout))
			},
		},
		{
			name:  "Formato inválido",
			since: "01/02/2024",
			validate: func(t *testing.T, start, end time.Time, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "Final antes do início",
			since: "2024-02-10",
			until: "2024-02-01",
			validate: func(t *testing.T, start, end time.Time, err error) {
				assert.ErrorContains(t, err, "anterior")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDateRange(tt.since, tt.until, now)
			tt.validate(t, start, end, err)
		})
	}
}
