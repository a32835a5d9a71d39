package persona

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// AuthorCount is a reader who can be chatted with and how many reviews back
// the persona.
type AuthorCount struct {
	Name    string `json:"name"`
	Reviews int    `json:"reviews"`
}

// Export converts the reviews written by readerName into persona records,
// in collection order. Books repeated in the collection are exported once.
func Export(books []domain.Book, readerName string) []domain.PersonaRecord {
	seen := make(map[uuid.UUID]bool)
	records := make([]domain.PersonaRecord, 0)
	for _, b := range books {
		if b.ReaderName != readerName || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		records = append(records, domain.PersonaRecord{
			ID:      "book_" + b.ID.String(),
			Content: b.Title + ": " + b.Review,
			Author:  b.ReaderName,
			Type:    domain.PersonaRecordType,
			Date:    domain.FormatDate(b.ReadDate),
			Title:   b.Title,
		})
	}
	return records
}

// Authors lists every reader name with its review count, sorted by name.
func Authors(books []domain.Book) []AuthorCount {
	counts := make(map[string]int)
	for _, b := range books {
		if b.ReaderName == "" {
			continue
		}
		counts[b.ReaderName]++
	}

	out := make([]AuthorCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, AuthorCount{Name: name, Reviews: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
