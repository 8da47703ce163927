package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mayank2021264/ai-flashcard-generator/internal/middleware"
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

// In-memory repositories for wiring real services under httptest.

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memSetRepo struct {
	sets map[uuid.UUID]*models.FlashcardSet
	seq  int
}

func newMemSetRepo() *memSetRepo {
	return &memSetRepo{sets: make(map[uuid.UUID]*models.FlashcardSet)}
}

func (r *memSetRepo) Create(ctx context.Context, set *models.FlashcardSet) error {
	r.seq++
	set.ID = uuid.New()
	set.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Second)
	set.UpdatedAt = set.CreatedAt
	cp := *set
	r.sets[set.ID] = &cp
	return nil
}

func (r *memSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FlashcardSet, error) {
	s, ok := r.sets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (r *memSetRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FlashcardSet, error) {
	var out []*models.FlashcardSet
	for _, s := range r.sets {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSetRepo) Update(ctx context.Context, set *models.FlashcardSet) error {
	if _, ok := r.sets[set.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *set
	r.sets[set.ID] = &cp
	return nil
}

func (r *memSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sets, id)
	return nil
}

func (r *memSetRepo) Search(ctx context.Context, userID uuid.UUID, term string) ([]*models.FlashcardSet, error) {
	needle := strings.ToLower(term)
	all, _ := r.ListByUser(ctx, userID)
	var out []*models.FlashcardSet
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Title), needle) ||
			strings.Contains(strings.ToLower(s.Description), needle) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memTokenStore struct {
	tokens map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: make(map[string]string)}
}

func (s *memTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *memTokenStore) Get(ctx context.Context, token string) (string, error) {
	id, ok := s.tokens[token]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return id, nil
}

func (s *memTokenStore) Delete(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

// asUser fakes the auth middleware by attaching the user id directly.
func asUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func doRequest(t *testing.T, router chi.Router, method, path string, body *bytes.Reader) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
