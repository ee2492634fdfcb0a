package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/equanote/equanote/internal/config"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

type httpRemoteGateway struct {
	client *resty.Client
	apiKey string

	mu     sync.RWMutex
	token  string
	userID string

	logger *logger.Logger
}

// NewHTTPRemoteGateway constructs an HTTP/REST implementation of
// [RemoteGateway]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPRemoteGateway(cfg config.ClientRemote, log *logger.Logger) (RemoteGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpRemoteGateway{client: cli, apiKey: cfg.APIKey, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetSession implements [RemoteGateway]. It stores the session access token
// and resolves the stable user id from the token's subject claim. All
// subsequent requests are scoped to that user.
func (h *httpRemoteGateway) SetSession(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.token = ""
		h.userID = ""
		return nil
	}

	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.userID = userID
	return nil
}

// UserID implements [RemoteGateway].
func (h *httpRemoteGateway) UserID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

// RegisterUser implements [RemoteGateway]. It POSTs the user payload to
// POST /api/v1/users/register. The endpoint upserts by user id, so repeated
// calls for the same user are safe.
func (h *httpRemoteGateway) RegisterUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/v1/users/register")
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("register user request: %w", err)
	}

	return decodeEnvelope[models.RemoteUser](resp)
}

// CreateBook implements [RemoteGateway]. It POSTs the book payload to
// POST /api/v1/books and returns the created row including the assigned
// remote id.
func (h *httpRemoteGateway) CreateBook(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		Post("/api/v1/books")
	if err != nil {
		return models.RemoteBook{}, fmt.Errorf("create book request: %w", err)
	}

	return decodeEnvelope[models.RemoteBook](resp)
}

// UpdateBook implements [RemoteGateway]. It PATCHes the row matching
// (id = book.ID, user_id = book.UserID) and returns the updated row.
func (h *httpRemoteGateway) UpdateBook(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		SetQueryParam("user_id", book.UserID).
		Patch("/api/v1/books/" + url.PathEscape(book.ID))
	if err != nil {
		return models.RemoteBook{}, fmt.Errorf("update book request: %w", err)
	}

	return decodeEnvelope[models.RemoteBook](resp)
}

// SoftDeleteBook implements [RemoteGateway]. It marks the remote row deleted
// via an update-by-filter rather than removing it, so other clients'
// incremental pulls can observe the tombstone.
func (h *httpRemoteGateway) SoftDeleteBook(ctx context.Context, remoteID, userID string) error {
	return h.softDelete(ctx, "/api/v1/books/", remoteID, userID)
}

// ListBooks implements [RemoteGateway]. It GETs the user's live books ordered
// by creation time descending. updatedAfter, when non-nil, is passed through
// for incremental pulls.
func (h *httpRemoteGateway) ListBooks(ctx context.Context, userID string, updatedAfter *time.Time) ([]models.RemoteBook, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("user_id", userID).
		SetQueryParam("order", "created_at.desc")
	if updatedAfter != nil {
		req.SetQueryParam("updated_after", updatedAfter.UTC().Format(time.RFC3339))
	}

	resp, err := req.Get("/api/v1/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}

	return decodeEnvelope[[]models.RemoteBook](resp)
}

// CreateFormula implements [RemoteGateway].
func (h *httpRemoteGateway) CreateFormula(ctx context.Context, formula models.RemoteFormula) (models.RemoteFormula, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(formula).
		Post("/api/v1/formulas")
	if err != nil {
		return models.RemoteFormula{}, fmt.Errorf("create formula request: %w", err)
	}

	return decodeEnvelope[models.RemoteFormula](resp)
}

// UpdateFormula implements [RemoteGateway].
func (h *httpRemoteGateway) UpdateFormula(ctx context.Context, formula models.RemoteFormula) (models.RemoteFormula, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(formula).
		SetQueryParam("user_id", formula.UserID).
		Patch("/api/v1/formulas/" + url.PathEscape(formula.ID))
	if err != nil {
		return models.RemoteFormula{}, fmt.Errorf("update formula request: %w", err)
	}

	return decodeEnvelope[models.RemoteFormula](resp)
}

// SoftDeleteFormula implements [RemoteGateway].
func (h *httpRemoteGateway) SoftDeleteFormula(ctx context.Context, remoteID, userID string) error {
	return h.softDelete(ctx, "/api/v1/formulas/", remoteID, userID)
}

// ListFormulas implements [RemoteGateway]. An empty bookIDs set returns an
// empty slice without issuing a request.
func (h *httpRemoteGateway) ListFormulas(ctx context.Context, userID string, bookIDs []string, updatedAfter *time.Time) ([]models.RemoteFormula, error) {
	if len(bookIDs) == 0 {
		return nil, nil
	}

	req := h.authedRequest(ctx).
		SetQueryParam("user_id", userID).
		SetQueryParam("book_ids", strings.Join(bookIDs, ",")).
		SetQueryParam("order", "created_at.desc")
	if updatedAfter != nil {
		req.SetQueryParam("updated_after", updatedAfter.UTC().Format(time.RFC3339))
	}

	resp, err := req.Get("/api/v1/formulas")
	if err != nil {
		return nil, fmt.Errorf("list formulas request: %w", err)
	}

	return decodeEnvelope[[]models.RemoteFormula](resp)
}

// ListRecentFormulas implements [RemoteGateway].
func (h *httpRemoteGateway) ListRecentFormulas(ctx context.Context, userID string, updatedAfter time.Time) ([]models.RemoteFormula, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("user_id", userID).
		SetQueryParam("updated_after", updatedAfter.UTC().Format(time.RFC3339)).
		SetQueryParam("order", "created_at.desc").
		Get("/api/v1/formulas")
	if err != nil {
		return nil, fmt.Errorf("list recent formulas request: %w", err)
	}

	return decodeEnvelope[[]models.RemoteFormula](resp)
}

func (h *httpRemoteGateway) softDelete(ctx context.Context, collection, remoteID, userID string) error {
	payload := map[string]any{
		"is_deleted": true,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetQueryParam("user_id", userID).
		Patch(collection + url.PathEscape(remoteID))
	if err != nil {
		return fmt.Errorf("soft delete request: %w", err)
	}

	_, err = decodeEnvelope[json.RawMessage](resp)
	return err
}

func (h *httpRemoteGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if h.apiKey != "" {
		req.SetHeader("apikey", h.apiKey)
	}
	switch {
	case token != "":
		req.SetHeader("Authorization", "Bearer "+token)
	case h.apiKey != "":
		req.SetHeader("Authorization", "Bearer "+h.apiKey)
	}

	return req
}

// decodeEnvelope maps the HTTP status, then unwraps the {success, data, error}
// envelope shared by every endpoint. Transport failures, non-2xx statuses and
// success=false envelopes all surface as plain errors; the sync layer treats
// them uniformly.
func decodeEnvelope[T any](resp *resty.Response) (T, error) {
	var zero T

	if err := mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env models.APIResponse[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("decode response envelope: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "no error message provided"
		}
		return zero, fmt.Errorf("%w: %s", ErrRemoteRejected, msg)
	}

	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token subject is empty")
	}

	return sub, nil
}
