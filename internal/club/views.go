package club

import (
	"time"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/stats"
)

const (
	topBooksPerReader = 3
	topReaders        = 5
	recentMonths      = 6
)

// Dashboard is the statistics view of one year.
type Dashboard struct {
	Year            int
	Summary         stats.Summary
	Monthly         [12]stats.Bucket
	Quarterly       [4]stats.Bucket
	Yearly          []stats.Bucket
	RecentMonths    []stats.Bucket
	Emotions        []stats.Count
	Genres          []stats.Count
	EmotionTimeline []stats.TimelinePoint
	GenreEmotions   []stats.GenreEmotion
	TopBooks        []stats.ReaderBooks
	TopReaders      []stats.ReaderCount
}

// Dashboard computes the statistics view for year from the current books.
func (s *Session) Dashboard(year int, now time.Time) Dashboard {
	books := s.Books()
	return Dashboard{
		Year:            year,
		Summary:         stats.Summarize(books, year),
		Monthly:         stats.MonthlyCounts(books, year),
		Quarterly:       stats.QuarterlyCounts(books, year),
		Yearly:          stats.YearlyCounts(books),
		RecentMonths:    stats.RecentMonths(books, now, recentMonths),
		Emotions:        stats.EmotionDistribution(books),
		Genres:          stats.GenreDistribution(books),
		EmotionTimeline: stats.EmotionTimeline(books, now),
		GenreEmotions:   stats.GenreEmotions(books),
		TopBooks:        stats.TopBooksPerReader(books, topBooksPerReader),
		TopReaders:      stats.TopReadersByCount(books, topReaders),
	}
}

// Meeting is the view prepared for the next club meeting.
type Meeting struct {
	Date   time.Time
	Latest []domain.Book
}

// Meeting lists the latest book of every reader and the next meeting date.
func (s *Session) Meeting(now time.Time) Meeting {
	return Meeting{
		Date:   stats.NextMeeting(now),
		Latest: stats.LatestBookPerReader(s.Books()),
	}
}

// ActionItem is an action list with the quarter its first target month
// falls in.
type ActionItem struct {
	domain.ActionList
	Quarter string
}

// ActionOverview is the action list view.
type ActionOverview struct {
	Items    []ActionItem
	Stats    domain.ActionListStats
	Statuses []stats.Count
	Quarters []stats.Count
}

// ActionOverview lists the action items with their statistics.
func (s *Session) ActionOverview() ActionOverview {
	actions := s.ActionLists()

	items := make([]ActionItem, 0, len(actions))
	quarters := make([]string, 0, len(actions))
	for _, a := range actions {
		q := stats.QuarterLabel(a.TargetMonths)
		items = append(items, ActionItem{ActionList: a, Quarter: q})
		quarters = append(quarters, q)
	}

	return ActionOverview{
		Items:    items,
		Stats:    stats.ActionStats(actions),
		Statuses: stats.StatusDistribution(actions),
		Quarters: stats.Distribution(quarters),
	}
}
