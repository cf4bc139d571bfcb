package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDateRange lê um par de datas YYYY-MM-DD. Ambas vazias retornam nil.
func ParseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return nil, nil, fmt.Errorf("data inicial inválida: %w", err)
	}

	end, err := ParseDate(endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("data final inválida: %w", err)
	}

	if (start == nil) != (end == nil) {
		return nil, nil, fmt.Errorf("informe data inicial e final")
	}

	if start != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("data final anterior à data inicial")
	}

	return start, end, nil
}
