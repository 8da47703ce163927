package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Source records where a flashcard set came from.
const (
	SourceText   = "text"
	SourcePDF    = "pdf"
	SourceManual = "manual"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

type Flashcard struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

type FlashcardSet struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Flashcards  []Flashcard `json:"flashcards"`
	Tags        []string    `json:"tags"`
	Source      string      `json:"source"`
	IsPublic    bool        `json:"is_public"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MarshalJSON adds the derived flashcard_count so it never drifts from the
// embedded card array.
func (s FlashcardSet) MarshalJSON() ([]byte, error) {
	type alias FlashcardSet
	return json.Marshal(struct {
		alias
		FlashcardCount int `json:"flashcard_count"`
	}{
		alias:          alias(s),
		FlashcardCount: len(s.Flashcards),
	})
}

type CardInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CreateSetRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Flashcards  []CardInput `json:"flashcards"`
	Tags        []string    `json:"tags"`
	IsPublic    bool        `json:"is_public"`
}

// UpdateSetRequest carries a partial update: nil fields keep their prior
// values.
type UpdateSetRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Flashcards  *[]CardInput `json:"flashcards"`
	Tags        *[]string    `json:"tags"`
	IsPublic    *bool        `json:"is_public"`
}

type GenerateFromTextRequest struct {
	Text        string   `json:"text"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	AIProvider  string   `json:"ai_provider"`
}

// PDFInfo reports what the extractor pulled out of an uploaded document.
type PDFInfo struct {
	Pages          int `json:"pdfPages"`
	ExtractedChars int `json:"textExtracted"`
}
