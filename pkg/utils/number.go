package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MajorToCents converte um valor em unidades da moeda (ex.: 12.34) para centavos
func MajorToCents(value float64) int64 {
	return int64(math.Round(value * 100))
}

// ParseMajorToCents converte um decimal textual (ex.: "12.34") para centavos.
// String vazia vale zero.
func ParseMajorToCents(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return MajorToCents(f), nil
}

// MicrosToCents converte micros (1/1.000.000 da moeda) para centavos
func MicrosToCents(micros int64) int64 {
	return int64(math.Round(float64(micros) / 10000))
}

func CentsToMicros(cents int64) int64 {
	return cents * 10000
}

// CentsToMajor é usado nas redes que recebem orçamento em unidades da moeda
func CentsToMajor(cents int64) float64 {
	return float64(cents) / 100
}

// ParseInt64 aceita string vazia como zero
func ParseInt64(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

// ParseFloat aceita string vazia como zero
func ParseFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
