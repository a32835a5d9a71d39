package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bookclub-backend/internal/club"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/stats"
)

type viewClub interface {
	Dashboard(year int, now time.Time) club.Dashboard
	Meeting(now time.Time) club.Meeting
	Reload(ctx context.Context) error
}

// ViewHandler serves the derived views: dashboard, meeting and reload.
type ViewHandler struct {
	club viewClub
	log  *slog.Logger
	now  func() time.Time
}

// NewViewHandler creates a ViewHandler.
func NewViewHandler(club viewClub, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{club: club, log: logger.With("handler", "view"), now: time.Now}
}

type summaryResponse struct {
	TotalBooks     int          `json:"totalBooks"`
	BooksThisYear  int          `json:"booksThisYear"`
	MonthlyAverage float64      `json:"monthlyAverage"`
	AverageRating  float64      `json:"averageRating"`
	ReaderCount    int          `json:"readerCount"`
	TopEmotion     *stats.Count `json:"topEmotion,omitempty"`
}

type timelinePointResponse struct {
	BookID   string `json:"bookId"`
	Title    string `json:"title"`
	Emotion  string `json:"emotion"`
	ReadDate string `json:"readDate"`
	Rating   int    `json:"rating"`
	Score    int    `json:"score"`
}

type genreEmotionResponse struct {
	Genre    string        `json:"genre"`
	Emotions []stats.Count `json:"emotions"`
	Total    int           `json:"total"`
}

type readerBooksResponse struct {
	ReaderID   string         `json:"readerId"`
	ReaderName string         `json:"readerName"`
	Books      []bookResponse `json:"books"`
}

type readerCountResponse struct {
	ReaderID   string `json:"readerId"`
	ReaderName string `json:"readerName"`
	Count      int    `json:"count"`
}

type dashboardResponse struct {
	Year            int                     `json:"year"`
	Summary         summaryResponse         `json:"summary"`
	Monthly         []stats.Bucket          `json:"monthly"`
	Quarterly       []stats.Bucket          `json:"quarterly"`
	Yearly          []stats.Bucket          `json:"yearly"`
	RecentMonths    []stats.Bucket          `json:"recentMonths"`
	Emotions        []stats.Count           `json:"emotions"`
	Genres          []stats.Count           `json:"genres"`
	EmotionTimeline []timelinePointResponse `json:"emotionTimeline"`
	GenreEmotions   []genreEmotionResponse  `json:"genreEmotions"`
	TopBooks        []readerBooksResponse   `json:"topBooks"`
	TopReaders      []readerCountResponse   `json:"topReaders"`
}

type meetingResponse struct {
	Date   string         `json:"date"`
	Latest []bookResponse `json:"latest"`
}

// Dashboard handles GET /api/v1/dashboard?year=YYYY. The year defaults to
// the current one.
func (h *ViewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year := now.Year()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1900 || y > 9999 {
			handleError(h.log, w, r, domain.NewValidationError("year", "must be a four digit year"))
			return
		}
		year = y
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(h.club.Dashboard(year, now)))
}

// Meeting handles GET /api/v1/meeting.
func (h *ViewHandler) Meeting(w http.ResponseWriter, r *http.Request) {
	m := h.club.Meeting(h.now())
	writeJSON(w, http.StatusOK, meetingResponse{
		Date:   domain.FormatDate(m.Date),
		Latest: toBookResponses(m.Latest),
	})
}

// Reload handles POST /api/v1/reload.
func (h *ViewHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.club.Reload(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func toDashboardResponse(d club.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Year: d.Year,
		Summary: summaryResponse{
			TotalBooks:     d.Summary.TotalBooks,
			BooksThisYear:  d.Summary.BooksThisYear,
			MonthlyAverage: d.Summary.MonthlyAverage,
			AverageRating:  d.Summary.AverageRating,
			ReaderCount:    d.Summary.ReaderCount,
			TopEmotion:     d.Summary.TopEmotion,
		},
		Monthly:         d.Monthly[:],
		Quarterly:       d.Quarterly[:],
		Yearly:          nonNilBuckets(d.Yearly),
		RecentMonths:    nonNilBuckets(d.RecentMonths),
		Emotions:        nonNilCounts(d.Emotions),
		Genres:          nonNilCounts(d.Genres),
		EmotionTimeline: make([]timelinePointResponse, 0, len(d.EmotionTimeline)),
		GenreEmotions:   make([]genreEmotionResponse, 0, len(d.GenreEmotions)),
		TopBooks:        make([]readerBooksResponse, 0, len(d.TopBooks)),
		TopReaders:      make([]readerCountResponse, 0, len(d.TopReaders)),
	}
	for _, p := range d.EmotionTimeline {
		resp.EmotionTimeline = append(resp.EmotionTimeline, timelinePointResponse{
			BookID:   p.BookID.String(),
			Title:    p.Title,
			Emotion:  p.Emotion.String(),
			ReadDate: domain.FormatDate(p.ReadDate),
			Rating:   p.Rating,
			Score:    p.Score,
		})
	}
	for _, g := range d.GenreEmotions {
		resp.GenreEmotions = append(resp.GenreEmotions, genreEmotionResponse{
			Genre:    g.Genre,
			Emotions: nonNilCounts(g.Emotions),
			Total:    g.Total,
		})
	}
	for _, rb := range d.TopBooks {
		resp.TopBooks = append(resp.TopBooks, readerBooksResponse{
			ReaderID:   rb.ReaderID.String(),
			ReaderName: rb.ReaderName,
			Books:      toBookResponses(rb.Books),
		})
	}
	for _, rc := range d.TopReaders {
		resp.TopReaders = append(resp.TopReaders, readerCountResponse{
			ReaderID:   rc.ReaderID.String(),
			ReaderName: rc.ReaderName,
			Count:      rc.Count,
		})
	}
	return resp
}

func nonNilBuckets(b []stats.Bucket) []stats.Bucket {
	if b == nil {
		return []stats.Bucket{}
	}
	return b
}
