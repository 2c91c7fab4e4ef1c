package router

import (
	"net/http"
	"strings"

	"vulearn/internal/api/v1/handler"
	"vulearn/internal/apiclient"
	"vulearn/internal/config"
	"vulearn/internal/middleware"
	"vulearn/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the API client, services and handlers. Every catalog route is
// public, so the client carries no session.
func New(cfg *config.Config, logger zerolog.Logger) http.Handler {
	logger.Info().Str("environment", cfg.Environment).Str("api_base_url", cfg.APIBaseURL).Msg("Router initialized")

	// 1. Backend client
	client := apiclient.New(apiclient.SettingsFromConfig(cfg), nil, logger)

	// 2. Services & handlers
	courseSvc := service.NewCourseService(client, logger)
	lessonSvc := service.NewLessonService(client, logger)
	quizSvc := service.NewQuizService(client, logger)
	reviewSvc := service.NewReviewService(client, logger)
	contentSvc := service.NewContentService()

	catalogHandler := handler.NewCatalogHandler(courseSvc, lessonSvc, quizSvc, reviewSvc, contentSvc, logger)

	// 3. Routes, mounted under /v1
	r := mux.NewRouter()
	api := r.PathPrefix("/v1").Subrouter()
	catalogHandler.RegisterRoutes(api)

	// Redirect root-level requests to /v1/{path}
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/v1" || strings.HasPrefix(req.URL.Path, "/v1/") {
			http.NotFound(w, req)
			return
		}
		http.Redirect(w, req, "/v1"+req.URL.Path, http.StatusMovedPermanently)
	})

	// 4. CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	return middleware.Logger(logger)(c.Handler(r))
}
