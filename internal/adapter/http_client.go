package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/anteater-game/server/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [GameServerAdapter] over the given base URL. Zero-value config fields fall
// back to the local development server.
func NewHTTPServerAdapter(cfg HTTPClientConfig) GameServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, creds models.Credentials) (int64, error) {
	return h.authenticate(ctx, "/api/auth/signup", creds)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (int64, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

// authenticate posts credentials to the given endpoint, extracts the bearer
// token from the Authorization response header, stores it, and returns the
// player id read from the token's subject claim.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return 0, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return 0, fmt.Errorf("auth parse bearer token: %w", err)
	}
	playerID, err := parsePlayerIDFromJWT(token)
	if err != nil {
		return 0, fmt.Errorf("auth parse player id: %w", err)
	}

	h.SetToken(token)
	return playerID, nil
}

func (h *httpServerAdapter) ChangeCredentials(ctx context.Context, update models.CredentialsUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/players/me")
	if err != nil {
		return fmt.Errorf("change credentials request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/players/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) RecordScore(ctx context.Context, submission models.ScoreSubmission) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submission).
		Post("/api/scores")
	if err != nil {
		return 0, fmt.Errorf("record score request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var created map[string]int64
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, fmt.Errorf("decode record score response: %w", err)
	}

	return created["score_id"], nil
}

func (h *httpServerAdapter) TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.FormatInt(limit, 10)).
		Get("/api/scores/top")
	if err != nil {
		return nil, fmt.Errorf("top scores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode top scores response: %w", err)
	}

	return entries, nil
}

func (h *httpServerAdapter) GetProgress(ctx context.Context) (models.Progress, error) {
	resp, err := h.authedRequest(ctx).Get("/api/progress")
	if err != nil {
		return models.Progress{}, fmt.Errorf("get progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Progress{}, err
	}

	var progress models.Progress
	if err = json.Unmarshal(resp.Body(), &progress); err != nil {
		return models.Progress{}, fmt.Errorf("decode progress response: %w", err)
	}

	return progress, nil
}

func (h *httpServerAdapter) SetLevel(ctx context.Context, level int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LevelUpdate{Level: level}).
		Put("/api/progress/level")
	if err != nil {
		return fmt.Errorf("set level request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) AddAchievement(ctx context.Context, achievementID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AchievementGrant{AchievementID: achievementID}).
		Post("/api/progress/achievements")
	if err != nil {
		return fmt.Errorf("add achievement request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrServerUnavailable
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parsePlayerIDFromJWT reads the subject claim without verifying the
// signature; the client has no sign key and only needs its own id.
func parsePlayerIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}
