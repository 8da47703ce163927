package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type FlashcardSetRepository interface {
	Create(ctx context.Context, set *models.FlashcardSet) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FlashcardSet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FlashcardSet, error)
	Update(ctx context.Context, set *models.FlashcardSet) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, term string) ([]*models.FlashcardSet, error)
}
