package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

// ErrUnauthorized signals an expired or invalid session. Callers clear the
// stored token and ask the user to log in again.
var ErrUnauthorized = errors.New("session expired or invalid")

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

type AuthResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type setListEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Count   int                   `json:"count"`
	Data    []models.FlashcardSet `json:"data"`
}

type setEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    models.FlashcardSet `json:"data"`
	Info    *models.PDFInfo     `json:"info"`
}

func (c *Client) Signup(name, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(http.MethodPost, "/api/auth/signup", models.SignupRequest{
		FullName: name, Email: email, Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email: email, Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(refreshToken string) error {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	return c.doJSON(http.MethodPost, "/api/auth/logout", models.RefreshRequest{RefreshToken: refreshToken}, &out)
}

func (c *Client) Me() (*models.User, error) {
	var out struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := c.doJSON(http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ListSets() ([]models.FlashcardSet, error) {
	var out setListEnvelope
	if err := c.doJSON(http.MethodGet, "/api/flashcards", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) SearchSets(term string) ([]models.FlashcardSet, error) {
	var out setListEnvelope
	path := "/api/flashcards/search?q=" + url.QueryEscape(term)
	if err := c.doJSON(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetSet(id uuid.UUID) (*models.FlashcardSet, error) {
	var out setEnvelope
	if err := c.doJSON(http.MethodGet, "/api/flashcards/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateSet(req models.CreateSetRequest) (*models.FlashcardSet, error) {
	var out setEnvelope
	if err := c.doJSON(http.MethodPost, "/api/flashcards", req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateSet(id uuid.UUID, req models.UpdateSetRequest) (*models.FlashcardSet, error) {
	var out setEnvelope
	if err := c.doJSON(http.MethodPut, "/api/flashcards/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteSet(id uuid.UUID) error {
	var out setEnvelope
	return c.doJSON(http.MethodDelete, "/api/flashcards/"+id.String(), nil, &out)
}

func (c *Client) GenerateFromText(req models.GenerateFromTextRequest) (*models.FlashcardSet, error) {
	var out setEnvelope
	if err := c.doJSON(http.MethodPost, "/api/ai/generate-from-text", req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) GenerateFromPDF(pdfBytes []byte, filename string, req models.GenerateFromTextRequest) (*models.FlashcardSet, *models.PDFInfo, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, nil, err
	}
	if _, err := part.Write(pdfBytes); err != nil {
		return nil, nil, err
	}
	mw.WriteField("title", req.Title)
	mw.WriteField("description", req.Description)
	tagsJSON, _ := json.Marshal(req.Tags)
	mw.WriteField("tags", string(tagsJSON))
	mw.WriteField("aiProvider", req.AIProvider)
	if err := mw.Close(); err != nil {
		return nil, nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/ai/generate-from-pdf", &body)
	if err != nil {
		return nil, nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var out setEnvelope
	if err := c.do(httpReq, &out); err != nil {
		return nil, nil, err
	}
	return &out.Data, out.Info, nil
}

func (c *Client) doJSON(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &e) == nil && e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode server response: %w", err)
		}
	}
	return nil
}
