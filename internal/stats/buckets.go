// Package stats derives dashboard and meeting views from snapshots of the
// club's collections. Every function is pure: inputs are never modified and
// the same input always yields the same output.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Bucket is a labelled count for one time period.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountInYear returns how many books were read in year.
func CountInYear(books []domain.Book, year int) int {
	n := 0
	for _, b := range books {
		if b.ReadDate.Year() == year {
			n++
		}
	}
	return n
}

// MonthlyCounts partitions the books read in year into twelve buckets
// labelled "1월".."12월". Books from other years are left out.
func MonthlyCounts(books []domain.Book, year int) [12]Bucket {
	var out [12]Bucket
	for i := range out {
		out[i].Label = domain.MonthToken(i + 1)
	}
	for _, b := range books {
		if b.ReadDate.Year() != year {
			continue
		}
		out[int(b.ReadDate.Month())-1].Count++
	}
	return out
}

// QuarterlyCounts groups the books read in year into "1분기".."4분기".
func QuarterlyCounts(books []domain.Book, year int) [4]Bucket {
	var out [4]Bucket
	for i := range out {
		out[i].Label = fmt.Sprintf("%d분기", i+1)
	}
	for _, b := range books {
		if b.ReadDate.Year() != year {
			continue
		}
		out[(int(b.ReadDate.Month())-1)/3].Count++
	}
	return out
}

// YearlyCounts returns one bucket per year that has books, oldest first.
func YearlyCounts(books []domain.Book) []Bucket {
	counts := make(map[int]int)
	for _, b := range books {
		counts[b.ReadDate.Year()]++
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]Bucket, len(years))
	for i, y := range years {
		out[i] = Bucket{Label: fmt.Sprintf("%d", y), Count: counts[y]}
	}
	return out
}

// RecentMonths counts the books of the n calendar months ending with the
// month of now, oldest first, labelled "YYYY-MM".
func RecentMonths(books []domain.Book, now time.Time, n int) []Bucket {
	if n <= 0 {
		return []Bucket{}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	out := make([]Bucket, n)
	index := make(map[string]int, n)
	for i := range out {
		label := first.AddDate(0, i, 0).Format("2006-01")
		out[i].Label = label
		index[label] = i
	}

	for _, b := range books {
		if i, ok := index[b.ReadDate.Format("2006-01")]; ok {
			out[i].Count++
		}
	}
	return out
}
