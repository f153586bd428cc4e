package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] rooted at cfg.ServerURL.
// A scheme-less address such as "localhost:5005" is treated as http. The
// adapter starts with cfg.Token, if any.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidServer
	}

	return strings.TrimRight(u.String(), "/"), nil
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

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login reads the token from the response body and falls back to the
// Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResp.Token
	if token == "" {
		token = bearerToken(resp.Header().Get("Authorization"))
	}
	if token == "" {
		return "", fmt.Errorf("login: %w", ErrNoToken)
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) ListHouses(ctx context.Context) ([]models.HouseResponse, error) {
	var houses []models.HouseResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/houses", &houses); err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	return houses, nil
}

func (h *httpServerAdapter) GetHouse(ctx context.Context, houseID int64) (models.HouseResponse, error) {
	var house models.HouseResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/houses/"+itoa(houseID), &house); err != nil {
		return models.HouseResponse{}, fmt.Errorf("get house: %w", err)
	}
	return house, nil
}

func (h *httpServerAdapter) ListUserHouses(ctx context.Context, userID int64) ([]models.HouseResponse, error) {
	var houses []models.HouseResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/users/"+itoa(userID)+"/houses", &houses); err != nil {
		return nil, fmt.Errorf("list user houses: %w", err)
	}
	return houses, nil
}

func (h *httpServerAdapter) AddHouse(ctx context.Context, address string, price float64, photoName string, photo io.Reader) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetFormData(map[string]string{
			"address": address,
			"price":   strconv.FormatFloat(price, 'f', -1, 64),
		}).
		SetFileReader("photo", photoName, photo).
		Post("/api/houses")
	if err != nil {
		return fmt.Errorf("add house request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PlaceBid(ctx context.Context, houseID int64, amount float64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.BidRequest{Amount: &amount}).
		Post("/api/houses/" + itoa(houseID) + "/bids")
	if err != nil {
		return fmt.Errorf("place bid request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListBids(ctx context.Context, houseID int64) ([]models.BidResponse, error) {
	var bids []models.BidResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/houses/"+itoa(houseID)+"/bids", &bids); err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/users/"+itoa(userID), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = h.getJSON(req, "/api/users/current", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) UpdateUsername(ctx context.Context, username string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.UsernameUpdate{Username: username}).
		Post("/api/users/current/update")
	if err != nil {
		return fmt.Errorf("update username request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getJSON(req *resty.Request, path string, result any) error {
	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
