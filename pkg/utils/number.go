package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor monetário para duas
// casas, como as colunas da tabela analítica esperam.
func RoundWithTwoDecimalPlace(value float64) float64 {
	if value == 0 {
		return 0
	}

	return math.Round(value*100) / 100
}
