package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-canvas-studio/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAuthorityAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAuthorityAdapter(cfg HTTPClientConfig) AuthorityAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAuthorityAdapter{client: cli}
}

func (h *httpAuthorityAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthorityAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAuthorityAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

func (h *httpAuthorityAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpAuthorityAdapter) UpsertTrial(ctx context.Context, req models.TrialUpsertRequest) (models.TrialValidation, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/trial/")
	if err != nil {
		return models.TrialValidation{}, fmt.Errorf("trial upsert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrialValidation{}, err
	}

	var validation models.TrialValidation
	if err = json.Unmarshal(resp.Body(), &validation); err != nil {
		return models.TrialValidation{}, fmt.Errorf("decode trial upsert response: %w", err)
	}

	return validation, nil
}

func (h *httpAuthorityAdapter) ValidateTrial(ctx context.Context, sessionID string) (models.TrialValidation, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/trial/" + sessionID)
	if err != nil {
		return models.TrialValidation{}, fmt.Errorf("trial validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrialValidation{}, err
	}

	var validation models.TrialValidation
	if err = json.Unmarshal(resp.Body(), &validation); err != nil {
		return models.TrialValidation{}, fmt.Errorf("decode trial validate response: %w", err)
	}

	return validation, nil
}

func (h *httpAuthorityAdapter) ConvertTrial(ctx context.Context, sessionID string, req models.TrialConvertRequest) (models.TrialConvertResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/trial/" + sessionID + "/convert")
	if err != nil {
		return models.TrialConvertResponse{}, fmt.Errorf("trial convert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrialConvertResponse{}, err
	}

	var result models.TrialConvertResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.TrialConvertResponse{}, fmt.Errorf("decode trial convert response: %w", err)
	}

	return result, nil
}

func (h *httpAuthorityAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		Post("/api/projects/")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var created models.Project
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Project{}, fmt.Errorf("decode create project response: %w", err)
	}

	return created, nil
}

func (h *httpAuthorityAdapter) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/api/projects/" + projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("get project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var project models.Project
	if err = json.Unmarshal(resp.Body(), &project); err != nil {
		return models.Project{}, fmt.Errorf("decode get project response: %w", err)
	}

	return project, nil
}

func (h *httpAuthorityAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/api/projects/")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode list projects response: %w", err)
	}

	return projects, nil
}

func (h *httpAuthorityAdapter) UpdateProject(ctx context.Context, projectID string, update models.ProjectUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/api/projects/" + projectID)
	if err != nil {
		return fmt.Errorf("update project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthorityAdapter) DeleteProject(ctx context.Context, projectID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/projects/" + projectID)
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthorityAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpAuthorityAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
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

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
