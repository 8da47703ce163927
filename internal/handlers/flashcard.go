package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/middleware"
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
	"github.com/mayank2021264/ai-flashcard-generator/internal/services"
)

type FlashcardSetHandler struct {
	sets *services.FlashcardSetService
}

func NewFlashcardSetHandler(sets *services.FlashcardSetService) *FlashcardSetHandler {
	return &FlashcardSetHandler{sets: sets}
}

func (h *FlashcardSetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	userID := middleware.GetUserID(r.Context())

	set, err := h.sets.Create(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Flashcard set created successfully",
		"data":    set,
	})
}

func (h *FlashcardSetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	sets, err := h.sets.ListForOwner(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(sets),
		"data":    sets,
	})
}

func (h *FlashcardSetHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	term := r.URL.Query().Get("q")

	sets, err := h.sets.Search(r.Context(), userID, term)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(sets),
		"data":    sets,
	})
}

func (h *FlashcardSetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSetID(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	set, err := h.sets.GetByID(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    set,
	})
}

func (h *FlashcardSetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSetID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	userID := middleware.GetUserID(r.Context())

	set, err := h.sets.Update(r.Context(), id, userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Flashcard set updated successfully",
		"data":    set,
	})
}

func (h *FlashcardSetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSetID(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.sets.Delete(r.Context(), id, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Flashcard set deleted successfully",
		"data":    map[string]interface{}{},
	})
}

// parseSetID treats a malformed id like a missing document, matching the
// NotFound contract of the lookup itself.
func parseSetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("Flashcard set not found"))
		return uuid.Nil, false
	}
	return id, true
}
