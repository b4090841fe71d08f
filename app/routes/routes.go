package routes

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"rantbox/app/config"
	"rantbox/app/controllers"
	"rantbox/app/ledger"
	"rantbox/app/metrics"
	"rantbox/app/middleware"
	"rantbox/app/repositories"
	"rantbox/app/services"
)

// SetupRoutes wires repositories, services and controllers over the given
// ledger client and returns the application router. The client is injected
// so tests can substitute an in-memory ledger.
func SetupRoutes(cfg *config.Config, client ledger.Client, wallet *ledger.Wallet,
	collector *metrics.Collector, logger *slog.Logger,
) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.CORS)
	router.Use(collector.Instrument)

	rantRepo := repositories.NewArweaveRantRepository(client, wallet, cfg, logger)
	commentRepo := repositories.NewArweaveCommentRepository(client, wallet, cfg, logger)

	rantService := services.NewRantService(rantRepo, commentRepo, logger)
	commentService := services.NewCommentService(commentRepo, rantRepo, logger)

	rantController := controllers.NewRantController(rantService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	// OPTIONS is routed so the CORS middleware can answer preflights.
	rant := router.PathPrefix("/api/rant").Subrouter()
	rant.HandleFunc("/get-all", rantController.Index).Methods("GET", "OPTIONS")
	rant.HandleFunc("/details/{id}", rantController.Show).Methods("GET", "OPTIONS")
	rant.HandleFunc("/create", rantController.Create).Methods("POST", "OPTIONS")
	rant.HandleFunc("/comment/{id}", commentController.Create).Methods("POST", "OPTIONS")
	rant.HandleFunc("/greet", rantController.Greet).Methods("GET", "OPTIONS")

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	router.Handle("/metrics", collector.Handler()).Methods("GET")

	return router
}
