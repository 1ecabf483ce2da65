package handler

import (
	"log/slog"
	"net/http"

	"github.com/cafe-employee-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RouterConfig - параметры роутера, не относящиеся к хендлерам
type RouterConfig struct {
	UploadDir      string
	UploadPrefix   string
	AllowedOrigins []string
}

// Router настраивает маршруты API
type Router struct {
	logger          *slog.Logger
	cafeHandler     *CafeHandler
	employeeHandler *EmployeeHandler
	cfg             RouterConfig
}

// NewRouter создаёт новый роутер
func NewRouter(cafeHandler *CafeHandler, employeeHandler *EmployeeHandler, logger *slog.Logger, cfg RouterConfig) *Router {
	if cfg.UploadPrefix == "" {
		cfg.UploadPrefix = "/uploads"
	}
	return &Router{
		logger:          logger,
		cafeHandler:     cafeHandler,
		employeeHandler: employeeHandler,
		cfg:             cfg,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.CORS(rt.cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if rt.cfg.UploadDir != "" {
		files := http.StripPrefix(rt.cfg.UploadPrefix+"/", http.FileServer(http.Dir(rt.cfg.UploadDir)))
		r.Handle(rt.cfg.UploadPrefix+"/*", files)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.ContentType)

		r.Route("/cafe", func(r chi.Router) {
			r.Get("/", rt.cafeHandler.List)
			r.Post("/", rt.cafeHandler.Create)
			r.Get("/{id}", rt.cafeHandler.GetByID)
			r.Put("/{id}", rt.cafeHandler.Update)
			r.Delete("/{id}", rt.cafeHandler.Delete)
		})

		r.Route("/employee", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Post("/", rt.employeeHandler.Create)
			r.Get("/export", rt.employeeHandler.Export)
			r.Get("/{id}", rt.employeeHandler.GetByID)
			r.Put("/{id}", rt.employeeHandler.Update)
			r.Delete("/{id}", rt.employeeHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	return r
}
