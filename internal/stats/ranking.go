package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// ReaderBooks is one reader's best-rated books.
type ReaderBooks struct {
	ReaderID   uuid.UUID
	ReaderName string
	Books      []domain.Book
}

// ReaderCount is the number of books a reader logged.
type ReaderCount struct {
	ReaderID   uuid.UUID
	ReaderName string
	Count      int
}

// TopBooksPerReader groups books by reader, in order of each reader's first
// appearance, and keeps the n highest-rated books of each reader. Books with
// equal ratings keep their collection order.
func TopBooksPerReader(books []domain.Book, n int) []ReaderBooks {
	var groups []ReaderBooks
	index := make(map[uuid.UUID]int)
	for _, b := range books {
		i, ok := index[b.ReaderID]
		if !ok {
			i = len(groups)
			index[b.ReaderID] = i
			groups = append(groups, ReaderBooks{ReaderID: b.ReaderID, ReaderName: b.ReaderName})
		}
		groups[i].Books = append(groups[i].Books, b)
	}

	out := make([]ReaderBooks, len(groups))
	for i, g := range groups {
		sort.SliceStable(g.Books, func(a, b int) bool {
			return g.Books[a].Rating > g.Books[b].Rating
		})
		if n >= 0 && len(g.Books) > n {
			g.Books = g.Books[:n]
		}
		out[i] = g
	}
	return out
}

// TopReadersByCount returns the n readers with the most books, most first.
// Readers with equal counts keep the order of their first appearance.
func TopReadersByCount(books []domain.Book, n int) []ReaderCount {
	out := []ReaderCount{}
	index := make(map[uuid.UUID]int)
	for _, b := range books {
		if i, ok := index[b.ReaderID]; ok {
			out[i].Count++
			continue
		}
		index[b.ReaderID] = len(out)
		out = append(out, ReaderCount{ReaderID: b.ReaderID, ReaderName: b.ReaderName, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// LatestBookPerReader returns each reader's most recently read book, most
// recent first. On equal read dates the earlier book in the collection wins.
func LatestBookPerReader(books []domain.Book) []domain.Book {
	out := []domain.Book{}
	index := make(map[uuid.UUID]int)
	for _, b := range books {
		i, ok := index[b.ReaderID]
		if !ok {
			index[b.ReaderID] = len(out)
			out = append(out, b)
			continue
		}
		if b.ReadDate.After(out[i].ReadDate) {
			out[i] = b
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReadDate.After(out[j].ReadDate)
	})
	return out
}
