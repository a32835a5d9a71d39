package stats

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// Summary holds the headline numbers of the dashboard.
type Summary struct {
	TotalBooks     int
	BooksThisYear  int
	MonthlyAverage float64
	AverageRating  float64
	ReaderCount    int
	TopEmotion     *Count
}

// Summarize computes the headline numbers for year. Averages are rounded
// to one decimal place; the monthly average spreads the year over 12 months.
func Summarize(books []domain.Book, year int) Summary {
	s := Summary{
		TotalBooks:    len(books),
		BooksThisYear: CountInYear(books, year),
	}
	s.MonthlyAverage = round1(float64(s.BooksThisYear) / 12)

	readers := make(map[uuid.UUID]struct{})
	sum := 0
	for _, b := range books {
		sum += b.Rating
		readers[b.ReaderID] = struct{}{}
	}
	if len(books) > 0 {
		s.AverageRating = round1(float64(sum) / float64(len(books)))
	}
	s.ReaderCount = len(readers)

	if emotions := EmotionDistribution(books); len(emotions) > 0 {
		top := emotions[0]
		s.TopEmotion = &top
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NextMeeting returns the date of the upcoming Saturday, or today when
// today is a Saturday.
func NextMeeting(now time.Time) time.Time {
	days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	return time.Date(now.Year(), now.Month(), now.Day()+days, 0, 0, 0, 0, time.UTC)
}
