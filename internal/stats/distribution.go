package stats

import (
	"sort"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Unclassified is the genre of books that have none.
const Unclassified = "미분류"

// Count is the number of occurrences of one categorical value.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Distribution counts each distinct key, in order of first appearance.
func Distribution(keys []string) []Count {
	out := []Count{}
	index := make(map[string]int)
	for _, k := range keys {
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Count{Key: k, Count: 1})
	}
	return out
}

// SortedByCount returns a copy of counts ordered by count descending.
// Equal counts keep their relative order.
func SortedByCount(counts []Count) []Count {
	out := append([]Count{}, counts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// EmotionDistribution counts tagged emotions, most frequent first.
// Books without an emotion are skipped.
func EmotionDistribution(books []domain.Book) []Count {
	keys := make([]string, 0, len(books))
	for _, b := range books {
		if b.Emotion != nil && *b.Emotion != "" {
			keys = append(keys, string(*b.Emotion))
		}
	}
	return SortedByCount(Distribution(keys))
}

// GenreDistribution counts genres, most frequent first.
func GenreDistribution(books []domain.Book) []Count {
	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = genreOf(b)
	}
	return SortedByCount(Distribution(keys))
}

// StatusDistribution counts action lists per status. Every status is present,
// in display order, including those with a zero count.
func StatusDistribution(actions []domain.ActionList) []Count {
	out := make([]Count, len(domain.ActionStatuses))
	index := make(map[domain.ActionStatus]int, len(out))
	for i, s := range domain.ActionStatuses {
		out[i] = Count{Key: string(s)}
		index[s] = i
	}
	for _, a := range actions {
		if i, ok := index[a.Status]; ok {
			out[i].Count++
		}
	}
	return out
}

// ActionStats totals action lists by status.
func ActionStats(actions []domain.ActionList) domain.ActionListStats {
	s := domain.ActionListStats{Total: len(actions)}
	for _, a := range actions {
		switch a.Status {
		case domain.ActionStatusDone:
			s.Done++
		case domain.ActionStatusNotStarted:
			s.NotStarted++
		case domain.ActionStatusInProgress:
			s.InProgress++
		case domain.ActionStatusOnHold:
			s.OnHold++
		}
	}
	return s
}

func genreOf(b domain.Book) string {
	if b.Genre == nil || *b.Genre == "" {
		return Unclassified
	}
	return *b.Genre
}
