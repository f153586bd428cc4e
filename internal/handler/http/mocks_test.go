package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/service"
	"github.com/MKhiriev/go-house-bids/internal/utils"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsInvalid
}

type mockUserService struct {
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	updateUsernameFn func(ctx context.Context, userID int64, username string) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) UpdateUsername(ctx context.Context, userID int64, username string) error {
	if m.updateUsernameFn != nil {
		return m.updateUsernameFn(ctx, userID, username)
	}
	return nil
}

type mockHouseService struct {
	createHouseFn      func(ctx context.Context, house models.NewHouse) (models.House, error)
	getHouseFn         func(ctx context.Context, houseID int64) (models.House, error)
	listHousesFn       func(ctx context.Context) ([]models.House, error)
	listHousesByUserFn func(ctx context.Context, userID int64) ([]models.House, error)
	openPhotoFn        func(ctx context.Context, name string) (io.ReadCloser, error)
}

func (m *mockHouseService) CreateHouse(ctx context.Context, house models.NewHouse) (models.House, error) {
	if m.createHouseFn != nil {
		return m.createHouseFn(ctx, house)
	}
	return models.House{HouseID: 1}, nil
}

func (m *mockHouseService) GetHouse(ctx context.Context, houseID int64) (models.House, error) {
	if m.getHouseFn != nil {
		return m.getHouseFn(ctx, houseID)
	}
	return models.House{HouseID: houseID}, nil
}

func (m *mockHouseService) ListHouses(ctx context.Context) ([]models.House, error) {
	if m.listHousesFn != nil {
		return m.listHousesFn(ctx)
	}
	return nil, nil
}

func (m *mockHouseService) ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error) {
	if m.listHousesByUserFn != nil {
		return m.listHousesByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockHouseService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	if m.openPhotoFn != nil {
		return m.openPhotoFn(ctx, name)
	}
	return nil, io.EOF
}

type mockBidService struct {
	placeBidFn func(ctx context.Context, bid models.Bid) (models.Bid, error)
	listBidsFn func(ctx context.Context, houseID int64) ([]models.Bid, error)
}

func (m *mockBidService) PlaceBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	if m.placeBidFn != nil {
		return m.placeBidFn(ctx, bid)
	}
	return bid, nil
}

func (m *mockBidService) ListBids(ctx context.Context, houseID int64) ([]models.Bid, error) {
	if m.listBidsFn != nil {
		return m.listBidsFn(ctx, houseID)
	}
	return nil, nil
}

type mockAppConfigService struct {
	raw json.RawMessage
	err error
}

func (m *mockAppConfigService) FrontendConfig(context.Context) (json.RawMessage, error) {
	return m.raw, m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// validToken is accepted by acceptingAuth and maps to testUserID.
const (
	validToken = "valid-token"
	testUserID = int64(1)
)

// acceptingAuth accepts validToken only.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == validToken {
				return models.Token{SignedString: tokenString, UserID: testUserID}, nil
			}
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
}

// newTestHandler fills every missing service with a default mock.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.HouseService == nil {
		svcs.HouseService = &mockHouseService{}
	}
	if svcs.BidService == nil {
		svcs.BidService = &mockBidService{}
	}
	if svcs.AppConfigService == nil {
		svcs.AppConfigService = &mockAppConfigService{raw: json.RawMessage(`{}`)}
	}
	return NewHandler(svcs, config.Server{MaxUploadSize: 1 << 20}, logger.Nop())
}

// withUser puts userID into the request context the way the auth middleware does.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

func decodeMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.NewDecoder(body).Decode(&msg))
	return msg.Message
}
