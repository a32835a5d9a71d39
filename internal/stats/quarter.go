package stats

import (
	"strconv"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Undetermined labels action lists whose quarter cannot be derived.
const Undetermined = "undetermined"

// QuarterLabel derives "Q1".."Q4" from the first target month.
// An empty list or an unrecognized token yields Undetermined.
func QuarterLabel(targetMonths []string) string {
	if len(targetMonths) == 0 {
		return Undetermined
	}
	m, ok := domain.ParseMonth(targetMonths[0])
	if !ok {
		return Undetermined
	}
	return "Q" + strconv.Itoa((m+2)/3)
}
