package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Path parameters are restricted to digits, so "/api/users/current" never
// matches "/api/users/{userID}".
const (
	houseIDParam = "houseID"
	userIDParam  = "userID"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Get("/houses", h.listHouses)
			r.Get("/houses/{houseID:[0-9]+}", h.getHouse)
			r.Get("/houses/{houseID:[0-9]+}/bids", h.listBids)

			r.Get("/users/{userID:[0-9]+}", h.getUser)
			r.Get("/users/{userID:[0-9]+}/houses", h.listUserHouses)

			r.Get("/config", h.frontendConfig)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/houses", h.createHouse)
			r.Post("/houses/{houseID:[0-9]+}/bids", h.placeBid)

			r.Get("/users/current", h.currentUser)
			r.Post("/users/current/update", h.updateCurrentUser)
			r.Get("/users/current/houses", h.listCurrentUserHouses)
		})
	})

	router.Get("/uploads/{filename}", h.uploadedPhoto)
	router.Get("/*", h.frontend)

	return router
}
