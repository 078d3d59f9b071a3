package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"confmatch/internal/service"
	"confmatch/internal/transport/rest/handler"
	"confmatch/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	Questionnaire *service.QuestionnaireService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	questionnaireHandler := handler.NewQuestionnaireHandler(c.Questionnaire)
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes (all require an active session)
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(authMW.RequireSession)

	v1.HandleFunc("/questionnaire/schema", questionnaireHandler.Schema).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questionnaire/state", questionnaireHandler.State).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questionnaire/answers", questionnaireHandler.UpdateAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/questionnaire/options", questionnaireHandler.AddOption).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire/next", questionnaireHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire/back", questionnaireHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire/submit", questionnaireHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
