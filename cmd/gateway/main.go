package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docsage/docsage/internal/analyzer"
	"github.com/docsage/docsage/internal/audit"
	"github.com/docsage/docsage/internal/config"
	"github.com/docsage/docsage/internal/document"
	"github.com/docsage/docsage/internal/middleware"
)

const version = "1.0.0"

var (
	store      *document.Store
	pipeline   *analyzer.Pipeline
	auditor    *audit.Auditor
	maxHistory = 20
)

type chatRequest struct {
	Message             string             `json:"message"`
	DocumentID          string             `json:"document_id"`
	ConversationHistory []analyzer.Message `json:"conversation_history,omitempty"`
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	middleware.SetLogLevel(cfg.Docsage.Log.Level)
	if cfg.Docsage.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	docs, err := loadCorpus(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corpus")
	}
	store = document.NewStore(docs)
	log.Info().Int("documents", store.Len()).Str("backend", cfg.Docsage.Corpus.Backend).Msg("corpus loaded")

	logger := log.With().Str("component", "pipeline").Logger()
	pipeline = analyzer.New(analyzer.Options{
		MaxCitations:      cfg.Docsage.Pipeline.MaxCitations,
		SummaryThreshold:  cfg.Docsage.Pipeline.SummaryThreshold,
		FollowUpThreshold: cfg.Docsage.Pipeline.FollowUpThreshold,
		Logger:            &logger,
	})
	maxHistory = cfg.Docsage.Pipeline.MaxHistory

	if cfg.Docsage.Audit.Enabled {
		auditor = audit.New(cfg.Docsage.Audit.Path)
		defer auditor.Close()
	} else {
		auditor = &audit.Auditor{}
	}

	router := newRouter()

	// Start server
	srv := &http.Server{
		Addr:         cfg.Docsage.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Docsage.Server.Addr).Msg("Starting docsage gateway")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}

func loadCorpus(cfg *config.Config) ([]document.Document, error) {
	switch cfg.Docsage.Corpus.Backend {
	case "builtin":
		return document.Builtin(), nil
	case "yaml":
		return document.LoadYAML(cfg.Docsage.Corpus.Path)
	case "sqlite":
		return document.LoadSQLite(cfg.Docsage.Corpus.Path)
	}
	return nil, fmt.Errorf("unknown corpus backend: %s", cfg.Docsage.Corpus.Backend)
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	middleware.Register(router)
	router.Use(middleware.CORS(nil))

	router.HandleFunc("/health", healthHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/v1/documents", documentsHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/v1/documents/{id}/structure", structureHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/v1/documents/{id}/financial", financialHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/v1/documents/{id}/temporal", temporalHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/v1/chat", chatHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/v1/audit", auditHandler).Methods("GET", "OPTIONS")
	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "docsage",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
		"features": []string{
			"Document Analysis",
			"Citation Management",
			"Risk Assessment",
			"Compliance Checking",
			"Conversational AI",
		},
	})
}

func documentsHandler(w http.ResponseWriter, r *http.Request) {
	type documentInfo struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		SectionsCount int    `json:"sections_count"`
		Pages         int    `json:"pages"`
	}

	docs := store.List()
	infos := make([]documentInfo, len(docs))
	for i, doc := range docs {
		infos[i] = documentInfo{
			ID:            doc.ID,
			Title:         doc.Title,
			SectionsCount: len(doc.Sections),
			Pages:         doc.Pages(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": infos})
}

func structureHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.AnalyzeStructure(doc))
}

func financialHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.ExtractFinancialTerms(doc))
}

func temporalHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.ExtractTemporalTerms(doc))
}

func chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if req.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	doc, ok := store.Get(req.DocumentID)
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}

	history := req.ConversationHistory
	if maxHistory > 0 && len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	start := time.Now()
	resp := pipeline.AnswerQuery(doc, req.Message, history)
	auditor.Log(req.DocumentID, req.Message, resp.Confidence, len(resp.Citations), nil)

	log.Info().
		Str("document", req.DocumentID).
		Float64("confidence", resp.Confidence).
		Dur("elapsed", time.Since(start)).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("analysis completed")

	writeJSON(w, http.StatusOK, resp)
}

func auditHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := auditor.GetLogs(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve audit log")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
