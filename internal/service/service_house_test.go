package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/mock"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/internal/validators"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHouseSvc(t *testing.T) (HouseService, *mock.MockHouseRepository, *mock.MockPhotoStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHouseRepository(ctrl)
	photos := mock.NewMockPhotoStorage(ctrl)
	return NewHouseService(repo, photos, logger.Nop()), repo, photos
}

func TestHouseService_CreateHouse_StoresSanitizedPhoto(t *testing.T) {
	svc, repo, photos := newTestHouseSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		photos.EXPECT().Save(ctx, "My_House.JPG", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, r io.Reader) error {
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, "jpeg-bytes", string(b))
				return nil
			},
		),
		repo.EXPECT().CreateHouse(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, h models.House) (models.House, error) {
				assert.Equal(t, "1 Main St", h.Address)
				assert.Equal(t, 100000.0, h.Price)
				assert.Equal(t, "My_House.JPG", h.Photo)
				assert.Equal(t, int64(1), h.UserID)
				h.HouseID = 10
				return h, nil
			},
		),
	)

	house, err := svc.CreateHouse(ctx, models.NewHouse{
		UserID:    1,
		Address:   "1 Main St",
		Price:     100000,
		PhotoName: "My House.JPG",
		Photo:     []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), house.HouseID)
	assert.Equal(t, "/uploads/My_House.JPG", house.PhotoURL())
}

func TestHouseService_CreateHouse_NameSanitizesToEmpty(t *testing.T) {
	svc, _, _ := newTestHouseSvc(t)

	_, err := svc.CreateHouse(context.Background(), models.NewHouse{
		UserID:    1,
		Address:   "1 Main St",
		PhotoName: "../..//",
		Photo:     []byte("x"),
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPhotoName)
}

func TestHouseService_CreateHouse_SaveFails(t *testing.T) {
	svc, _, photos := newTestHouseSvc(t)

	photos.EXPECT().Save(gomock.Any(), "a.jpg", gomock.Any()).
		Return(errors.Join(store.ErrSavingPhoto, errors.New("disk full")))

	_, err := svc.CreateHouse(context.Background(), models.NewHouse{
		UserID: 1, Address: "x", PhotoName: "a.jpg", Photo: []byte("x"),
	})
	assert.ErrorIs(t, err, store.ErrSavingPhoto)
}

func TestHouseService_CreateHouse_OwnerMissing(t *testing.T) {
	svc, repo, photos := newTestHouseSvc(t)

	photos.EXPECT().Save(gomock.Any(), "a.jpg", gomock.Any()).Return(nil)
	repo.EXPECT().CreateHouse(gomock.Any(), gomock.Any()).Return(models.House{}, store.ErrNoUserWasFound)

	_, err := svc.CreateHouse(context.Background(), models.NewHouse{
		UserID: 99, Address: "x", PhotoName: "a.jpg", Photo: []byte("x"),
	})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestHouseService_GetHouse(t *testing.T) {
	svc, repo, _ := newTestHouseSvc(t)

	repo.EXPECT().GetHouse(gomock.Any(), int64(1)).
		Return(models.House{HouseID: 1, Address: "1 Main St", UserID: 1, OwnerName: "alice"}, nil)
	repo.EXPECT().GetHouse(gomock.Any(), int64(2)).
		Return(models.House{HouseID: 2, UserID: 77}, nil)
	repo.EXPECT().GetHouse(gomock.Any(), int64(3)).
		Return(models.House{}, store.ErrHouseNotFound)

	h, err := svc.GetHouse(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", h.OwnerNameOrUnknown())

	h, err = svc.GetHouse(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownUserName, h.OwnerNameOrUnknown())

	_, err = svc.GetHouse(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrHouseNotFound)
}

func TestHouseService_ListHousesByUser(t *testing.T) {
	svc, repo, _ := newTestHouseSvc(t)

	repo.EXPECT().ListHousesByUser(gomock.Any(), int64(1)).Return([]models.House{
		{HouseID: 1, UserID: 1},
		{HouseID: 3, UserID: 1},
	}, nil)
	repo.EXPECT().ListHousesByUser(gomock.Any(), int64(2)).Return(nil, nil)

	houses, err := svc.ListHousesByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	for _, h := range houses {
		assert.Equal(t, int64(1), h.UserID)
	}

	houses, err = svc.ListHousesByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, houses)
	assert.Empty(t, houses)
}

func TestHouseService_ListHouses_Error(t *testing.T) {
	svc, repo, _ := newTestHouseSvc(t)

	repo.EXPECT().ListHouses(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListHouses(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestHouseService_OpenPhoto(t *testing.T) {
	svc, _, photos := newTestHouseSvc(t)

	photos.EXPECT().Open(gomock.Any(), "house.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg")), nil)

	rc, err := svc.OpenPhoto(context.Background(), "house.jpg")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(b))
	require.NoError(t, rc.Close())

	for _, name := range []string{"", "../secret", "a/b.jpg", ".hidden"} {
		_, err := svc.OpenPhoto(context.Background(), name)
		assert.ErrorIs(t, err, store.ErrPhotoNotFound, name)
	}
}
