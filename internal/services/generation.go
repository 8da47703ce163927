package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
	"github.com/mayank2021264/ai-flashcard-generator/internal/repository"
)

type GenerationConfig struct {
	GeminiAPIKey    string
	OpenAIAPIKey    string
	CardsPerSet     int
	PromptCharLimit int
	MinSourceChars  int
}

type GenerationService struct {
	setRepo repository.FlashcardSetRepository
	cfg     GenerationConfig

	// overridable in tests
	selectProvider func(name string) (Provider, error)
}

func NewGenerationService(setRepo repository.FlashcardSetRepository, cfg GenerationConfig) *GenerationService {
	s := &GenerationService{
		setRepo: setRepo,
		cfg:     cfg,
	}
	s.selectProvider = func(name string) (Provider, error) {
		return SelectProvider(name, cfg.GeminiAPIKey, cfg.OpenAIAPIKey)
	}
	return s
}

// GenerateFromText runs the whole text flow: validate, one provider call,
// parse, persist. Nothing is written unless the reply parses cleanly.
func (s *GenerationService) GenerateFromText(ctx context.Context, userID uuid.UUID, req models.GenerateFromTextRequest) (*models.FlashcardSet, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &ValidationError{Message: "Please provide text content to generate flashcards"}
	}
	if req.Title == "" {
		return nil, &ValidationError{Message: "Please provide a title for the flashcard set"}
	}
	if utf8.RuneCountInString(text) < s.cfg.MinSourceChars {
		return nil, &ValidationError{Message: fmt.Sprintf("Text content is too short. Please provide at least %d characters.", s.cfg.MinSourceChars)}
	}

	return s.generate(ctx, userID, text, req, models.SourceText)
}

// GenerateFromPDF validates an uploaded document, extracts its text and runs
// the same flow with source=pdf. Extracted text is truncated to the prompt
// limit before it is sent to the provider.
func (s *GenerationService) GenerateFromPDF(ctx context.Context, userID uuid.UUID, fileBytes []byte, req models.GenerateFromTextRequest) (*models.FlashcardSet, *models.PDFInfo, error) {
	if req.Title == "" {
		return nil, nil, &ValidationError{Message: "Please provide a title for the flashcard set"}
	}

	extracted, pages, err := ExtractPDFText(fileBytes)
	if err != nil {
		return nil, nil, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(extracted)) < s.cfg.MinSourceChars {
		return nil, nil, &ValidationError{Message: "Could not extract enough text from PDF. Please ensure PDF contains readable text."}
	}

	content := truncateForPrompt(extracted, s.cfg.PromptCharLimit)

	set, err := s.generate(ctx, userID, content, req, models.SourcePDF)
	if err != nil {
		return nil, nil, err
	}

	info := &models.PDFInfo{Pages: pages, ExtractedChars: utf8.RuneCountInString(extracted)}
	return set, info, nil
}

func (s *GenerationService) generate(ctx context.Context, userID uuid.UUID, content string, req models.GenerateFromTextRequest, source string) (*models.FlashcardSet, error) {
	provider, err := s.selectProvider(req.AIProvider)
	if err != nil {
		return nil, err
	}

	raw, err := provider.Complete(ctx, buildFlashcardPrompt(content, s.cfg.CardsPerSet))
	if err != nil {
		return nil, err
	}

	cards, err := parseFlashcards(raw)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("AI-generated flashcards from %s using %s", source, provider.Name())
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	set := &models.FlashcardSet{
		UserID:      userID,
		Title:       req.Title,
		Description: description,
		Flashcards:  cards,
		Tags:        tags,
		Source:      source,
		IsPublic:    false,
	}

	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// truncateForPrompt caps extracted text so long documents stay within the
// provider's practical input size. The limit counts characters, not bytes,
// and the cut never lands inside a multibyte rune: the Gemini SDK marshals
// the prompt as a protobuf string, which must be valid UTF-8.
func truncateForPrompt(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func buildFlashcardPrompt(content string, numCards int) string {
	return fmt.Sprintf(`You are a helpful assistant that generates educational flashcards.
Based on the following content, create exactly %d flashcards with clear questions and concise answers.

Content:
%s

Return ONLY a valid JSON array with this exact format, no additional text:
[
  {"question": "Question text here", "answer": "Answer text here"},
  {"question": "Question text here", "answer": "Answer text here"}
]

Make sure questions are clear and answers are informative but concise (1-3 sentences max).`, numCards, content)
}

var codeFenceRegex = regexp.MustCompile("```(?:json)?\n?")

// parseFlashcards turns the provider's raw reply into validated cards.
// Order is preserved exactly as returned.
func parseFlashcards(raw string) ([]models.Flashcard, error) {
	jsonText := strings.TrimSpace(codeFenceRegex.ReplaceAllString(raw, ""))

	var parsed []models.CardInput
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, &ExternalServiceError{Message: "AI provider returned a reply that is not a valid JSON array of flashcards"}
	}
	if len(parsed) == 0 {
		return nil, &ExternalServiceError{Message: "AI provider returned no flashcards"}
	}

	cards := make([]models.Flashcard, len(parsed))
	for i, c := range parsed {
		if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
			return nil, &ExternalServiceError{Message: fmt.Sprintf("Flashcard %d missing question or answer", i+1)}
		}
		cards[i] = models.Flashcard{
			ID:       uuid.New(),
			Question: strings.TrimSpace(c.Question),
			Answer:   strings.TrimSpace(c.Answer),
		}
	}
	return cards, nil
}
