package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
	"github.com/mayank2021264/ai-flashcard-generator/internal/repository"
)

type FlashcardSetService struct {
	setRepo repository.FlashcardSetRepository
}

func NewFlashcardSetService(setRepo repository.FlashcardSetRepository) *FlashcardSetService {
	return &FlashcardSetService{setRepo: setRepo}
}

func (s *FlashcardSetService) Create(ctx context.Context, userID uuid.UUID, req models.CreateSetRequest) (*models.FlashcardSet, error) {
	if err := validateSetFields(req.Title, req.Description); err != nil {
		return nil, err
	}
	cards, err := buildCards(req.Flashcards)
	if err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	set := &models.FlashcardSet{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Flashcards:  cards,
		Tags:        tags,
		Source:      models.SourceManual,
		IsPublic:    req.IsPublic,
	}

	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *FlashcardSetService) ListForOwner(ctx context.Context, userID uuid.UUID) ([]*models.FlashcardSet, error) {
	sets, err := s.setRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []*models.FlashcardSet{}
	}
	return sets, nil
}

func (s *FlashcardSetService) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.FlashcardSet, error) {
	return s.getOwned(ctx, id, userID)
}

// Update overwrites only the supplied fields, re-validates the result and
// persists it as one row write. Replaced cards get fresh identifiers.
func (s *FlashcardSetService) Update(ctx context.Context, id, userID uuid.UUID, req models.UpdateSetRequest) (*models.FlashcardSet, error) {
	set, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		set.Title = *req.Title
	}
	if req.Description != nil {
		set.Description = *req.Description
	}
	if req.Flashcards != nil {
		cards, err := buildCards(*req.Flashcards)
		if err != nil {
			return nil, err
		}
		set.Flashcards = cards
	}
	if req.Tags != nil {
		set.Tags = *req.Tags
	}
	if req.IsPublic != nil {
		set.IsPublic = *req.IsPublic
	}

	if err := validateSetFields(set.Title, set.Description); err != nil {
		return nil, err
	}
	if len(set.Flashcards) == 0 {
		return nil, &ValidationError{Message: "Please provide at least one flashcard"}
	}

	if err := s.setRepo.Update(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *FlashcardSetService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.setRepo.Delete(ctx, id)
}

func (s *FlashcardSetService) Search(ctx context.Context, userID uuid.UUID, term string) ([]*models.FlashcardSet, error) {
	if strings.TrimSpace(term) == "" {
		return nil, &ValidationError{Message: "Please provide a search term"}
	}

	sets, err := s.setRepo.Search(ctx, userID, term)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []*models.FlashcardSet{}
	}
	return sets, nil
}

// getOwned fetches a set and enforces the owner check shared by get, update
// and delete.
func (s *FlashcardSetService) getOwned(ctx context.Context, id, userID uuid.UUID) (*models.FlashcardSet, error) {
	set, err := s.setRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Flashcard set not found"}
		}
		return nil, err
	}
	if set.UserID != userID {
		return nil, &ForbiddenError{Message: "Not authorized to access this flashcard set"}
	}
	return set, nil
}

func validateSetFields(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Message: "Please provide a title for the flashcard set"}
	}
	if len(title) > models.MaxTitleLen {
		return &ValidationError{Message: fmt.Sprintf("Title cannot be more than %d characters", models.MaxTitleLen)}
	}
	if len(description) > models.MaxDescriptionLen {
		return &ValidationError{Message: fmt.Sprintf("Description cannot be more than %d characters", models.MaxDescriptionLen)}
	}
	return nil
}

func buildCards(inputs []models.CardInput) ([]models.Flashcard, error) {
	if len(inputs) == 0 {
		return nil, &ValidationError{Message: "Please provide at least one flashcard"}
	}

	cards := make([]models.Flashcard, len(inputs))
	for i, c := range inputs {
		question := strings.TrimSpace(c.Question)
		answer := strings.TrimSpace(c.Answer)
		if question == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Flashcard %d: please provide a question", i+1)}
		}
		if answer == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Flashcard %d: please provide an answer", i+1)}
		}
		cards[i] = models.Flashcard{ID: uuid.New(), Question: question, Answer: answer}
	}
	return cards, nil
}
