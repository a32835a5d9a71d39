package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

// DefaultEmotionScore is used for books with neither an override nor a known emotion.
const DefaultEmotionScore = 5

// emotionScores rates each emotion by the energy it carries, 1..10.
var emotionScores = map[domain.Emotion]int{
	domain.EmotionSad:        2,
	domain.EmotionCalm:       4,
	domain.EmotionThoughtful: 6,
	domain.EmotionSurprised:  7,
	domain.EmotionHappy:      8,
	domain.EmotionExcited:    10,
}

// EmotionScore returns the book's emotion score override, otherwise the
// score of its emotion, otherwise DefaultEmotionScore.
func EmotionScore(b domain.Book) int {
	if b.EmotionScore != nil && *b.EmotionScore > 0 {
		return *b.EmotionScore
	}
	if b.Emotion != nil {
		if s, ok := emotionScores[*b.Emotion]; ok {
			return s
		}
	}
	return DefaultEmotionScore
}

// TimelinePoint is one book on the emotion timeline.
type TimelinePoint struct {
	BookID   uuid.UUID
	Title    string
	Emotion  domain.Emotion
	ReadDate time.Time
	Rating   int
	Score    int
}

const (
	timelineMonths = 6
	timelineSize   = 10
)

// EmotionTimeline lists books with an emotion read in the six months before
// now, oldest first. A title and author pair appears once (its earliest read)
// and only the ten most recent points are kept.
func EmotionTimeline(books []domain.Book, now time.Time) []TimelinePoint {
	cutoff := domain.DateOf(now).AddDate(0, -timelineMonths, 0)

	recent := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if b.Emotion == nil || *b.Emotion == "" || b.ReadDate.Before(cutoff) {
			continue
		}
		recent = append(recent, b)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ReadDate.Before(recent[j].ReadDate)
	})

	type titleAuthor struct{ title, author string }
	seen := make(map[titleAuthor]bool)
	points := []TimelinePoint{}
	for _, b := range recent {
		key := titleAuthor{b.Title, b.Author}
		if seen[key] {
			continue
		}
		seen[key] = true
		points = append(points, TimelinePoint{
			BookID:   b.ID,
			Title:    b.Title,
			Emotion:  *b.Emotion,
			ReadDate: b.ReadDate,
			Rating:   b.Rating,
			Score:    EmotionScore(b),
		})
	}

	if len(points) > timelineSize {
		points = points[len(points)-timelineSize:]
	}
	return points
}

// GenreEmotion is the emotion breakdown of one genre.
type GenreEmotion struct {
	Genre    string
	Emotions []Count
	Total    int
}

// GenreEmotions counts emotions per genre. Genres without any tagged emotion
// are omitted; the rest are ordered by total descending.
func GenreEmotions(books []domain.Book) []GenreEmotion {
	var genres []string
	keys := make(map[string][]string)
	for _, b := range books {
		g := genreOf(b)
		if _, ok := keys[g]; !ok {
			genres = append(genres, g)
			keys[g] = nil
		}
		if b.Emotion != nil && *b.Emotion != "" {
			keys[g] = append(keys[g], string(*b.Emotion))
		}
	}

	out := []GenreEmotion{}
	for _, g := range genres {
		if len(keys[g]) == 0 {
			continue
		}
		out = append(out, GenreEmotion{
			Genre:    g,
			Emotions: Distribution(keys[g]),
			Total:    len(keys[g]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
