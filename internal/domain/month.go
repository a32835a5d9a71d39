package domain

import (
	"strconv"
	"strings"
)

const monthSuffix = "월"

// ParseMonth maps a Korean month token ("1월".."12월") to 1..12.
func ParseMonth(token string) (int, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(token), monthSuffix)
	if !ok {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// MonthToken renders month m (1..12) as a Korean month token.
func MonthToken(m int) string {
	return strconv.Itoa(m) + monthSuffix
}
