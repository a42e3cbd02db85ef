package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRegister   = "/create-account"
	pathLogin      = "/login"
	pathGetUser    = "/get-user"
	pathListNotes  = "/get-all-notes"
	pathSearch     = "/search-notes"
	pathAddNote    = "/add-note"
	pathEditNote   = "/edit-note/{noteId}"
	pathDeleteNote = "/delete-note/{noteId}"
	pathPinNote    = "/update-note-pinned/{noteId}"
	pathSeenNote   = "/update-note-seen/{noteId}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying resty client with it and the request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// /create-account. A taken email comes back as 200 with "error": true and is
// reported as [ErrRejected].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(pathRegister)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if result.AccessToken == "" {
		return models.AuthResponse{}, fmt.Errorf("register response: %w", ErrEmptyResponse)
	}

	h.SetToken(result.AccessToken)
	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login and
// stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(pathLogin)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if result.AccessToken == "" {
		return models.AuthResponse{}, fmt.Errorf("login response: %w", ErrEmptyResponse)
	}

	h.SetToken(result.AccessToken)
	return result, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get(pathGetUser)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if result.User == nil {
		return models.User{}, fmt.Errorf("get user response: %w", ErrEmptyResponse)
	}

	return *result.User, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	return h.getNotes(h.authedRequest(ctx), pathListNotes)
}

// SearchNotes sends the query unmodified; matching is done by the server.
func (h *httpServerAdapter) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	return h.getNotes(h.authedRequest(ctx).SetQueryParam("query", query), pathSearch)
}

func (h *httpServerAdapter) getNotes(req *resty.Request, path string) ([]models.Note, error) {
	var result models.NotesResponse

	resp, err := req.SetResult(&result).Get(path)
	if err != nil {
		return nil, fmt.Errorf("notes request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if result.Notes == nil {
		return []models.Note{}, nil
	}

	return result.Notes, nil
}

func (h *httpServerAdapter) AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	return h.sendNote(h.authedRequest(ctx).SetBody(draft), http.MethodPost, pathAddNote)
}

func (h *httpServerAdapter) EditNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	return h.sendNote(h.noteRequest(ctx, noteID).SetBody(update), http.MethodPut, pathEditNote)
}

func (h *httpServerAdapter) SetPinned(ctx context.Context, noteID string, isPinned bool) (models.Note, error) {
	return h.sendNote(h.noteRequest(ctx, noteID).SetBody(models.PinRequest{IsPinned: isPinned}), http.MethodPut, pathPinNote)
}

func (h *httpServerAdapter) SetSeen(ctx context.Context, noteID string, seen bool) (models.Note, error) {
	return h.sendNote(h.noteRequest(ctx, noteID).SetBody(models.SeenRequest{Seen: models.Truthy(seen)}), http.MethodPut, pathSeenNote)
}

func (h *httpServerAdapter) sendNote(req *resty.Request, method, path string) (models.Note, error) {
	var result models.NoteResponse

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetResult(&result).
		Execute(method, path)
	if err != nil {
		return models.Note{}, fmt.Errorf("note request %s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}
	if result.Note == nil {
		return models.Note{}, fmt.Errorf("note response %s: %w", path, ErrEmptyResponse)
	}

	return *result.Note, nil
}

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.noteRequest(ctx, noteID).Delete(pathDeleteNote)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) noteRequest(ctx context.Context, noteID string) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("noteId", noteID)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
