// Package study drives an interactive review of one flashcard set. The
// session is a small state machine: the user is either viewing cards one at
// a time or editing a working copy of the set. Navigation and flip input is
// ignored while an edit is in progress.
package study

import (
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
)

// Draft is the editable working copy of a set. Changes accumulate here and
// only reach the server when the edit is saved.
type Draft struct {
	Title       string
	Description string
	Tags        []string
	Cards       []models.CardInput
}

type Session struct {
	set   models.FlashcardSet
	mode  Mode
	index int
	// faceUp is false whenever a new card is shown, so the question side
	// always comes first.
	faceUp bool
	draft  *Draft
}

func NewSession(set models.FlashcardSet) *Session {
	return &Session{set: set}
}

func (s *Session) Mode() Mode  { return s.mode }
func (s *Session) Index() int  { return s.index }
func (s *Session) FaceUp() bool { return s.faceUp }
func (s *Session) Set() models.FlashcardSet { return s.set }

func (s *Session) Current() models.Flashcard {
	if len(s.set.Flashcards) == 0 {
		return models.Flashcard{}
	}
	return s.set.Flashcards[s.index]
}

// Flip turns the current card over. Reports whether anything changed.
func (s *Session) Flip() bool {
	if s.mode != ModeViewing || len(s.set.Flashcards) == 0 {
		return false
	}
	s.faceUp = !s.faceUp
	return true
}

// Next advances to the following card face-down. At the last card it does
// nothing.
func (s *Session) Next() bool {
	if s.mode != ModeViewing || s.index >= len(s.set.Flashcards)-1 {
		return false
	}
	s.index++
	s.faceUp = false
	return true
}

// Prev moves back one card face-down. At the first card it does nothing.
func (s *Session) Prev() bool {
	if s.mode != ModeViewing || s.index <= 0 {
		return false
	}
	s.index--
	s.faceUp = false
	return true
}

// BeginEdit snapshots the set into a draft and switches to editing. Returns
// nil if an edit is already in progress.
func (s *Session) BeginEdit() *Draft {
	if s.mode == ModeEditing {
		return nil
	}
	cards := make([]models.CardInput, len(s.set.Flashcards))
	for i, c := range s.set.Flashcards {
		cards[i] = models.CardInput{Question: c.Question, Answer: c.Answer}
	}
	s.draft = &Draft{
		Title:       s.set.Title,
		Description: s.set.Description,
		Tags:        append([]string(nil), s.set.Tags...),
		Cards:       cards,
	}
	s.mode = ModeEditing
	return s.draft
}

func (s *Session) Draft() *Draft {
	return s.draft
}

// CancelEdit discards the draft and returns to viewing.
func (s *Session) CancelEdit() {
	s.draft = nil
	s.mode = ModeViewing
}

// SaveRequest builds the full update payload from the draft. The caller
// sends it to the server and, on success, passes the saved set to ApplySaved.
func (s *Session) SaveRequest() models.UpdateSetRequest {
	d := s.draft
	cards := append([]models.CardInput(nil), d.Cards...)
	tags := append([]string(nil), d.Tags...)
	return models.UpdateSetRequest{
		Title:       &d.Title,
		Description: &d.Description,
		Flashcards:  &cards,
		Tags:        &tags,
	}
}

// ApplySaved replaces the session's set with the server's saved copy and
// returns to viewing. The card index is clamped in case cards were removed.
func (s *Session) ApplySaved(saved models.FlashcardSet) {
	s.set = saved
	s.draft = nil
	s.mode = ModeViewing
	s.faceUp = false
	if s.index >= len(s.set.Flashcards) {
		s.index = len(s.set.Flashcards) - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}
