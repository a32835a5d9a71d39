package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fixed ids keep the sample dataset stable across restarts so that detail
// links built from fallback data stay valid.
var (
	sampleReaderKim  = uuid.MustParse("6f1c3a52-8d0e-4f57-9b1a-0c5e2d7a9b01")
	sampleReaderLee  = uuid.MustParse("6f1c3a52-8d0e-4f57-9b1a-0c5e2d7a9b02")
	sampleReaderPark = uuid.MustParse("6f1c3a52-8d0e-4f57-9b1a-0c5e2d7a9b03")
	sampleReaderJung = uuid.MustParse("6f1c3a52-8d0e-4f57-9b1a-0c5e2d7a9b04")
)

// SampleReaders returns the built-in demo readers.
func SampleReaders() []Reader {
	return []Reader{
		{ID: sampleReaderKim, Name: "김독서", Email: strPtr("kim@example.com"), Bio: strPtr("과학과 철학에 관심이 많은 독서가")},
		{ID: sampleReaderLee, Name: "이북러버", Email: strPtr("lee@example.com"), Bio: strPtr("소설과 문학 작품을 즐겨 읽는 독자")},
		{ID: sampleReaderPark, Name: "박철학", Email: strPtr("park@example.com"), Bio: strPtr("철학과 자기계발 서적을 선호하는 독자")},
		{ID: sampleReaderJung, Name: "정역사", Email: strPtr("jung@example.com"), Bio: strPtr("역사와 인문학 서적을 주로 읽는 독자")},
	}
}

// SampleBooks returns the built-in demo reviews, newest first.
// They are shown when the initial load fails and inserted by cmd/seed.
func SampleBooks() []Book {
	cosmos := "우주에 대한 경이로움과 과학적 사고의 중요성을 깨닫게 해준 책입니다. 세이건의 시적인 문체로 복잡한 과학 개념들을 쉽게 설명해주어 과학에 대한 흥미를 불러일으켰습니다."
	kimJiyoung := "현대 여성이 겪는 현실적인 문제들을 담담하게 그려낸 작품입니다. 읽으면서 많은 생각을 하게 되었고, 우리 사회에 대해 돌아보는 계기가 되었습니다."
	courage := "아들러 심리학을 바탕으로 한 대화형식의 책입니다. 타인의 시선에서 벗어나 자신만의 삶을 살아가는 것의 중요성을 배웠습니다. 실천하기는 어렵지만 좋은 방향을 제시해주는 책이었습니다."

	return []Book{
		{
			ID:           uuid.MustParse("0b7d4e8a-2c31-4a9f-8e55-7f3a1d2c4b03"),
			Title:        "미움받을 용기",
			Author:       "기시미 이치로, 고가 후미타케",
			ReaderID:     sampleReaderPark,
			ReaderName:   "박철학",
			Review:       courage,
			Presentation: strPtr(courage),
			Rating:       4,
			Emotion:      emotionPtr(EmotionCalm),
			ReadDate:     time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			Tags:         []string{"자기계발", "심리학", "철학"},
		},
		{
			ID:           uuid.MustParse("0b7d4e8a-2c31-4a9f-8e55-7f3a1d2c4b02"),
			Title:        "82년생 김지영",
			Author:       "조남주",
			ReaderID:     sampleReaderLee,
			ReaderName:   "이북러버",
			Review:       kimJiyoung,
			Presentation: strPtr(kimJiyoung),
			Rating:       4,
			Emotion:      emotionPtr(EmotionThoughtful),
			ReadDate:     time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
			Tags:         []string{"소설", "여성", "사회"},
		},
		{
			ID:           uuid.MustParse("0b7d4e8a-2c31-4a9f-8e55-7f3a1d2c4b01"),
			Title:        "코스모스",
			Author:       "칼 세이건",
			ReaderID:     sampleReaderKim,
			ReaderName:   "김독서",
			Review:       cosmos,
			Presentation: strPtr(cosmos),
			Rating:       5,
			Emotion:      emotionPtr(EmotionExcited),
			ReadDate:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Tags:         []string{"과학", "우주", "철학"},
		},
	}
}

func strPtr(s string) *string { return &s }

func emotionPtr(e Emotion) *Emotion { return &e }
