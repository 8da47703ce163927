package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mayank2021264/ai-flashcard-generator/internal/middleware"
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
	"github.com/mayank2021264/ai-flashcard-generator/internal/services"
)

type AIHandler struct {
	generation     *services.GenerationService
	maxUploadBytes int64
}

func NewAIHandler(generation *services.GenerationService, maxUploadSizeMB int) *AIHandler {
	return &AIHandler{
		generation:     generation,
		maxUploadBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

func (h *AIHandler) GenerateFromText(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFromTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	userID := middleware.GetUserID(r.Context())

	set, err := h.generation.GenerateFromText(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Flashcards generated successfully from text",
		"data":    set,
	})
}

func (h *AIHandler) GenerateFromPDF(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeJSON(w, http.StatusBadRequest, errorResp("PDF file exceeds the upload size limit"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Please upload a PDF file"))
		return
	}
	defer file.Close()

	// A .pdf filename is not enough: the declared type has to match.
	if header.Header.Get("Content-Type") != "application/pdf" {
		writeJSON(w, http.StatusBadRequest, errorResp("Only PDF files are allowed"))
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Failed to read uploaded file"))
		return
	}

	req := models.GenerateFromTextRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		AIProvider:  r.FormValue("aiProvider"),
	}
	// The client sends tags as a JSON-encoded array string.
	if tagsField := r.FormValue("tags"); tagsField != "" {
		if err := json.Unmarshal([]byte(tagsField), &req.Tags); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("Tags must be a JSON array of strings"))
			return
		}
	}

	userID := middleware.GetUserID(r.Context())

	set, info, err := h.generation.GenerateFromPDF(r.Context(), userID, fileBytes, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Flashcards generated successfully from PDF",
		"data":    set,
		"info":    info,
	})
}
