package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	if h.cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/authUser/registration", h.register)
		r.Post("/authUser/auth", h.authenticate)

		r.Post("/payment/webhook", h.paymentWebhook)

		r.Post("/migrate", h.migrate)
		r.Post("/generate-migration", h.generateMigration)
	})

	// /application mixes the public operator listing with per-user routes,
	// so authentication is applied inside the route group.
	router.Route("/application", func(r chi.Router) {
		r.Get("/all/data", h.getAllApplications)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createApplication)
			r.Get("/user/data", h.getUserApplications)
			r.Get("/{id}", h.getApplication)
			r.Patch("/{id}", h.updateApplication)
			r.Delete("/{id}", h.deleteApplication)
		})
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Patch("/", h.updateProfile)
			r.Delete("/", h.deleteProfile)
		})

		r.Route("/userCar", func(r chi.Router) {
			r.Post("/", h.createCar)
			r.Get("/", h.getUserCars)
			r.Get("/{id}", h.getCar)
			r.Put("/{id}", h.updateCar)
			r.Delete("/{id}", h.deleteCar)
		})

		r.Route("/carBrand", func(r chi.Router) {
			r.Post("/", h.createBrand)
			r.Get("/", h.getAllBrands)
			r.Get("/{id}", h.getBrand)
			r.Patch("/{id}", h.updateBrand)
			r.Delete("/{id}", h.deleteBrand)
			r.Post("/upload", h.uploadBrands)
		})

		r.Route("/engineVolume", func(r chi.Router) {
			r.Post("/", h.createEngineVolume)
			r.Get("/", h.getAllEngineVolumes)
			r.Get("/{id}", h.getEngineVolume)
			r.Patch("/{id}", h.updateEngineVolume)
			r.Delete("/{id}", h.deleteEngineVolume)
			r.Post("/upload", h.uploadEngineVolumes)
		})

		r.Route("/transmissionType", func(r chi.Router) {
			r.Post("/", h.createTransmissionType)
			r.Get("/", h.getAllTransmissionTypes)
			r.Get("/{id}", h.getTransmissionType)
			r.Patch("/{id}", h.updateTransmissionType)
			r.Delete("/{id}", h.deleteTransmissionType)
			r.Post("/upload", h.uploadTransmissionTypes)
		})
	})

	if h.cfg.Server.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(h.cfg.Server.StaticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return router
}
