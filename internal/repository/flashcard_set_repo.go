package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

type FlashcardSetRepo struct {
	pool *pgxpool.Pool
}

func NewFlashcardSetRepo(pool *pgxpool.Pool) *FlashcardSetRepo {
	return &FlashcardSetRepo{pool: pool}
}

const setColumns = `id, user_id, title, description, flashcards, tags, source, is_public, created_at, updated_at`

func (r *FlashcardSetRepo) Create(ctx context.Context, s *models.FlashcardSet) error {
	s.ID = uuid.New()
	if s.Tags == nil {
		s.Tags = []string{}
	}

	cardsJSON, err := json.Marshal(s.Flashcards)
	if err != nil {
		return err
	}

	query := `INSERT INTO flashcard_sets (id, user_id, title, description, flashcards, tags, source, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		s.ID, s.UserID, s.Title, s.Description, cardsJSON, s.Tags, s.Source, s.IsPublic,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *FlashcardSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FlashcardSet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+setColumns+` FROM flashcard_sets WHERE id = $1`, id)
	return scanSet(row)
}

func (r *FlashcardSetRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FlashcardSet, error) {
	query := `SELECT ` + setColumns + ` FROM flashcard_sets
		WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSets(rows)
}

func (r *FlashcardSetRepo) Update(ctx context.Context, s *models.FlashcardSet) error {
	cardsJSON, err := json.Marshal(s.Flashcards)
	if err != nil {
		return err
	}

	query := `UPDATE flashcard_sets
		SET title = $1, description = $2, flashcards = $3, tags = $4, is_public = $5, updated_at = NOW()
		WHERE id = $6 RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		s.Title, s.Description, cardsJSON, s.Tags, s.IsPublic, s.ID,
	).Scan(&s.UpdatedAt)
}

// Delete removes the set row; the embedded cards go with it in the same
// statement.
func (r *FlashcardSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM flashcard_sets WHERE id = $1", id)
	return err
}

func (r *FlashcardSetRepo) Search(ctx context.Context, userID uuid.UUID, term string) ([]*models.FlashcardSet, error) {
	pattern := "%" + escapeLikePattern(term) + "%"
	query := `SELECT ` + setColumns + ` FROM flashcard_sets
		WHERE user_id = $1
		  AND (title ILIKE $2
		    OR description ILIKE $2
		    OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $2))
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSets(rows)
}

// escapeLikePattern neutralizes ILIKE metacharacters so a user term like
// "100%" matches the literal substring instead of everything.
func escapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanSet(row pgx.Row) (*models.FlashcardSet, error) {
	s := &models.FlashcardSet{}
	var cardsJSON []byte

	err := row.Scan(
		&s.ID, &s.UserID, &s.Title, &s.Description, &cardsJSON, &s.Tags,
		&s.Source, &s.IsPublic, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(cardsJSON, &s.Flashcards); err != nil {
		return nil, err
	}
	if s.Flashcards == nil {
		s.Flashcards = []models.Flashcard{}
	}
	return s, nil
}

func collectSets(rows pgx.Rows) ([]*models.FlashcardSet, error) {
	var sets []*models.FlashcardSet
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
