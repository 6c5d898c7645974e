package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DefaultRangeDays é a janela usada pela galeria de criativos quando nenhuma data é informada
const DefaultRangeDays = 30

// ParseDateRange lê o intervalo since/until (AAAA-MM-DD). Sem nenhuma das datas, devolve os
// últimos DefaultRangeDays dias fechados antes de now. Com apenas uma, a outra ponta é
// completada a partir da janela padrão.
func ParseDateRange(since, until string, now time.Time) (time.Time, time.Time, error) {
	var start, end time.Time

	if until != "" {
		parsed, err := time.Parse(DateLayout, until)
		if err != nil {
			return start, end, fmt.Errorf("data final %q: %w", until, err)
		}
		end = parsed
	} else {
		y, m, d := now.AddDate(0, 0, -1).Date()
		end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if since != "" {
		parsed, err := time.Parse(DateLayout, since)
		if err != nil {
			return start, end, fmt.Errorf("data inicial %q: %w", since, err)
		}
		start = parsed
	} else {
		start = end.AddDate(0, 0, -(DefaultRangeDays - 1))
	}

	if end.Before(start) {
		return start, end, fmt.Errorf("data final %s anterior à inicial %s", end.Format(DateLayout), start.Format(DateLayout))
	}

	return start, end, nil
}
