package service

import (
	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	HouseService     HouseService
	BidService       BidService
	AppConfigService AppConfigService
}

// NewServices builds every service over storages. Services that accept
// client input are wrapped with their validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		UserService: NewUserService(storages.UserRepository, logger),
		HouseService: NewHouseValidationService().
			Wrap(NewHouseService(storages.HouseRepository, storages.PhotoStorage, logger)),
		BidService: NewBidValidationService().
			Wrap(NewBidService(storages.BidRepository, logger)),
		AppConfigService: NewAppConfigService(cfg.Server, logger),
	}
}
