package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/utils"
	"github.com/akhmetov/go-remind-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&createdUser).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return createdUser, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// Ping implements [ServerAdapter]. It GETs /api/health without
// authentication; any 2xx answer counts as reachable.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertReminder implements [ServerAdapter]. It PUTs the snapshot to
// PUT /api/reminders. Requires a valid bearer token.
func (h *httpServerAdapter) UpsertReminder(ctx context.Context, reminder models.RemoteReminder) error {
	return h.upsert(ctx, "/api/reminders", reminder)
}

// DeleteReminder implements [ServerAdapter]. It sends
// DELETE /api/reminders/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteReminder(ctx context.Context, id string) error {
	return h.delete(ctx, "/api/reminders/{id}", id)
}

// PullReminders implements [ServerAdapter]. It GETs /api/reminders and
// decodes the full owner snapshot, tombstones included.
func (h *httpServerAdapter) PullReminders(ctx context.Context) ([]models.RemoteReminder, error) {
	var reminders []models.RemoteReminder
	if err := h.pull(ctx, "/api/reminders", &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// UpsertCategory implements [ServerAdapter].
func (h *httpServerAdapter) UpsertCategory(ctx context.Context, category models.RemoteCategory) error {
	return h.upsert(ctx, "/api/categories", category)
}

// DeleteCategory implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, id string) error {
	return h.delete(ctx, "/api/categories/{id}", id)
}

// PullCategories implements [ServerAdapter].
func (h *httpServerAdapter) PullCategories(ctx context.Context) ([]models.RemoteCategory, error) {
	var categories []models.RemoteCategory
	if err := h.pull(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpsertSavedPlace implements [ServerAdapter].
func (h *httpServerAdapter) UpsertSavedPlace(ctx context.Context, place models.RemoteSavedPlace) error {
	return h.upsert(ctx, "/api/places", place)
}

// DeleteSavedPlace implements [ServerAdapter].
func (h *httpServerAdapter) DeleteSavedPlace(ctx context.Context, id string) error {
	return h.delete(ctx, "/api/places/{id}", id)
}

// PullSavedPlaces implements [ServerAdapter].
func (h *httpServerAdapter) PullSavedPlaces(ctx context.Context) ([]models.RemoteSavedPlace, error) {
	var places []models.RemoteSavedPlace
	if err := h.pull(ctx, "/api/places", &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (h *httpServerAdapter) upsert(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return fmt.Errorf("upsert request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) delete(ctx context.Context, path, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(path)
	if err != nil {
		return fmt.Errorf("delete request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) pull(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("pull request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode pull response %s: %w", path, err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
