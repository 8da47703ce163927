package study

import (
	"testing"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

func sampleSet(n int) models.FlashcardSet {
	cards := make([]models.Flashcard, n)
	for i := range cards {
		cards[i] = models.Flashcard{
			ID:       uuid.New(),
			Question: "Q" + string(rune('1'+i)),
			Answer:   "A" + string(rune('1'+i)),
		}
	}
	return models.FlashcardSet{
		ID:         uuid.New(),
		Title:      "JS Basics",
		Tags:       []string{"js"},
		Flashcards: cards,
	}
}

func TestSessionStartsFaceDownOnFirstCard(t *testing.T) {
	s := NewSession(sampleSet(3))
	if s.Index() != 0 {
		t.Fatalf("expected index 0, got %d", s.Index())
	}
	if s.FaceUp() {
		t.Fatal("expected first card face-down")
	}
	if s.Current().Question != "Q1" {
		t.Fatalf("unexpected current card %q", s.Current().Question)
	}
}

func TestFlipTogglesFace(t *testing.T) {
	s := NewSession(sampleSet(2))
	if !s.Flip() {
		t.Fatal("flip should succeed while viewing")
	}
	if !s.FaceUp() {
		t.Fatal("expected face-up after flip")
	}
	s.Flip()
	if s.FaceUp() {
		t.Fatal("expected face-down after second flip")
	}
}

func TestNavigationResetsFaceAndRespectsBounds(t *testing.T) {
	s := NewSession(sampleSet(2))
	s.Flip()
	if !s.Next() {
		t.Fatal("next from card 0 of 2 should succeed")
	}
	if s.FaceUp() {
		t.Fatal("next must show the new card face-down")
	}
	if s.Next() {
		t.Fatal("next at the last card should do nothing")
	}
	if s.Index() != 1 {
		t.Fatalf("index moved past the end: %d", s.Index())
	}
	if !s.Prev() {
		t.Fatal("prev from card 1 should succeed")
	}
	if s.Prev() {
		t.Fatal("prev at the first card should do nothing")
	}
}

func TestEditSnapshotsAndCancelDiscards(t *testing.T) {
	s := NewSession(sampleSet(2))
	d := s.BeginEdit()
	if d == nil {
		t.Fatal("expected a draft")
	}
	if s.BeginEdit() != nil {
		t.Fatal("nested edits should be rejected")
	}

	d.Title = "JS Advanced"
	d.Cards[0].Answer = "changed"

	// Navigation and flip inputs are ignored mid-edit.
	if s.Flip() || s.Next() || s.Prev() {
		t.Fatal("viewing inputs should be ignored while editing")
	}

	s.CancelEdit()
	if s.Mode() != ModeViewing {
		t.Fatal("cancel should return to viewing")
	}
	if s.Set().Title != "JS Basics" {
		t.Fatalf("cancel leaked draft changes: %q", s.Set().Title)
	}
	if s.Set().Flashcards[0].Answer != "A1" {
		t.Fatalf("cancel leaked card changes: %q", s.Set().Flashcards[0].Answer)
	}
}

func TestSaveRequestCarriesWholeDraft(t *testing.T) {
	s := NewSession(sampleSet(2))
	d := s.BeginEdit()
	d.Title = "JS Advanced"
	d.Cards = append(d.Cards, models.CardInput{Question: "Q3", Answer: "A3"})

	req := s.SaveRequest()
	if req.Title == nil || *req.Title != "JS Advanced" {
		t.Fatal("save request missing updated title")
	}
	if req.Flashcards == nil || len(*req.Flashcards) != 3 {
		t.Fatal("save request must carry the full card list")
	}

	saved := sampleSet(3)
	saved.Title = "JS Advanced"
	s.ApplySaved(saved)
	if s.Mode() != ModeViewing {
		t.Fatal("save should return to viewing")
	}
	if s.Set().Title != "JS Advanced" {
		t.Fatal("saved set not applied")
	}
}

func TestApplySavedClampsIndex(t *testing.T) {
	s := NewSession(sampleSet(3))
	s.Next()
	s.Next()
	s.BeginEdit()

	s.ApplySaved(sampleSet(1))
	if s.Index() != 0 {
		t.Fatalf("index should clamp to remaining cards, got %d", s.Index())
	}
}
