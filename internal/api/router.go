package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/brieffast/brieffast-server/internal/api/auth"
	"github.com/brieffast/brieffast-server/internal/api/recovery"
	"github.com/brieffast/brieffast-server/internal/config"
	"github.com/brieffast/brieffast-server/internal/services"
	"github.com/brieffast/brieffast-server/internal/store"
)

// NewRouter assembles the HTTP surface: briefing CRUD, markdown generation,
// PDF export and health probes. The briefing and generation endpoints sit
// behind the static API key; health stays open for load balancers.
func NewRouter(cfg *config.Config, st store.Store, reporter healthReporter, logo []byte, log zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	briefingHandler := NewBriefingHandler(services.NewBriefingService(st), log)
	generateHandler := NewGenerateHandler(services.NewGeneratorService(), log)
	exportHandler := NewExportHandler(services.NewExportService(st, logo, true), log)
	healthHandler := NewHealthHandler(reporter, st)

	guard := auth.Middleware(cfg.APIKey, cfg.SharePathPrefix)

	router.Handle("/api/briefings", guard(http.HandlerFunc(briefingHandler.CreateBriefing))).Methods("POST")
	router.Handle("/api/briefings", guard(http.HandlerFunc(briefingHandler.GetBriefing))).Methods("GET")
	router.Handle("/api/briefings", guard(http.HandlerFunc(briefingHandler.UpdateBriefing))).Methods("PUT")

	router.Handle("/api/generate", guard(http.HandlerFunc(generateHandler.Generate))).Methods("POST")

	router.Handle("/api/briefings/{id}/pdf", guard(http.HandlerFunc(exportHandler.ExportPDF))).Methods("GET")

	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/store", healthHandler.CheckStoreHealth).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", auth.HeaderName},
	})
	return c.Handler(router)
}
