package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/SibelSenturk950/CancerAI-API/advisory"
	"github.com/SibelSenturk950/CancerAI-API/config"
	"github.com/SibelSenturk950/CancerAI-API/internal/logger"
	"github.com/SibelSenturk950/CancerAI-API/model"
	"github.com/SibelSenturk950/CancerAI-API/patient"
	"github.com/SibelSenturk950/CancerAI-API/predict"
)

const version = "1.0.0"

type Server struct {
	cfg        *config.Config
	registry   *model.Registry
	pipeline   *predict.Pipeline
	advisories *advisory.Engine
	router     *chi.Mux
}

func NewServer(cfg *config.Config) (*Server, error) {
	// Load the model set before anything else: the process must not
	// serve traffic with a partial model set.
	registry := model.NewRegistry()
	logger.Info("loading models", "dir", cfg.ModelDir)
	err := registry.Load(map[model.Kind]string{
		model.KindSurvival:     cfg.SurvivalModelPath(),
		model.KindDrugResponse: cfg.DrugResponseModelPath(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	logger.Info("models loaded", "kinds", registry.Kinds())

	advisories, err := advisory.NewEngineFromFile(cfg.AdvisoryRules)
	if err != nil {
		return nil, fmt.Errorf("failed to load advisory rules: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		registry:   registry,
		pipeline:   predict.NewPipeline(registry, cfg.Risk, cfg.Response),
		advisories: advisories,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)

	// Prediction
	r.Post("/predict/survival", s.handlePredictSurvival)
	r.Post("/predict/drug-response", s.handlePredictDrugResponse)

	// Encoder vocabulary
	r.Get("/cancer-types", s.handleCancerTypes)
	r.Get("/stages", s.handleStages)
	r.Get("/treatments", s.handleTreatments)

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Home handler
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"name":        "CancerAI API",
		"version":     version,
		"description": "AI-powered cancer survival prediction API",
		"endpoints": map[string]string{
			"/":                      "API information",
			"/health":                "Health check",
			"/predict/survival":      "Predict 5-year survival",
			"/predict/drug-response": "Predict drug response",
			"/cancer-types":          "Supported cancer types",
			"/stages":                "Supported cancer stages",
			"/treatments":            "Supported treatment options",
		},
	})
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.registry.Loaded() {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:       "unhealthy",
			ModelsLoaded: false,
		})
		return
	}

	resp := HealthResponse{
		Status:       "healthy",
		ModelsLoaded: true,
	}
	if m, err := s.registry.Get(model.KindSurvival); err == nil {
		resp.SurvivalModel = fmt.Sprintf("%s (%s accuracy)", m.Info.Name, m.Info.Accuracy)
	}
	if m, err := s.registry.Get(model.KindDrugResponse); err == nil {
		resp.DrugModel = fmt.Sprintf("%s (%s accuracy)", m.Info.Name, m.Info.Accuracy)
	}

	respondJSON(w, http.StatusOK, resp)
}

// decodePatient parses and presence-checks the prediction request body.
// Returns false after writing the error response when the body is unusable.
func (s *Server) decodePatient(w http.ResponseWriter, r *http.Request) (patient.Input, bool) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return patient.Input{}, false
	}

	in, missing := req.input()
	if len(missing) > 0 {
		logger.WarnHttp4xx()
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
		return patient.Input{}, false
	}

	return in, true
}

// Survival prediction handler
func (s *Server) handlePredictSurvival(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodePatient(w, r)
	if !ok {
		return
	}

	result, err := s.pipeline.PredictSurvival(in)
	if err != nil {
		respondPredictError(w, err)
		return
	}

	advisories := []string{}
	if matched, err := s.advisories.Matched(advisory.Facts(in)); err == nil {
		advisories = append(advisories, matched...)
	} else {
		logger.Warn("advisory evaluation failed", "error", err)
	}

	predictionID := uuid.NewString()
	logger.Info("survival prediction",
		"prediction_id", predictionID,
		"risk_category", result.RiskCategory,
		"survived", result.Survived,
	)

	respondJSON(w, http.StatusOK, SurvivalResponse{
		Prediction: SurvivalPrediction{
			Survived:            result.Survived,
			SurvivalProbability: result.SurvivalProbability,
			DeathProbability:    result.DeathProbability,
			Confidence:          result.Confidence,
			RiskCategory:        string(result.RiskCategory),
		},
		Advisories: advisories,
		Patient: PatientEcho{
			Age:         in.Age,
			Sex:         in.Sex,
			CancerType:  in.CancerType,
			Stage:       in.Stage,
			TumorSizeCM: in.TumorSizeCM,
		},
		Model: ModelMeta{
			Name:            result.Model.Name,
			Accuracy:        result.Model.Accuracy,
			CrossValidation: result.Model.CrossValidation,
		},
		PredictionID: predictionID,
	})
}

// Drug response prediction handler
func (s *Server) handlePredictDrugResponse(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decodePatient(w, r)
	if !ok {
		return
	}

	result, err := s.pipeline.PredictDrugResponse(in)
	if err != nil {
		respondPredictError(w, err)
		return
	}

	predictionID := uuid.NewString()
	logger.Info("drug response prediction",
		"prediction_id", predictionID,
		"response_type", result.ResponseType,
	)

	respondJSON(w, http.StatusOK, DrugResponseResponse{
		Prediction: DrugResponsePrediction{
			ResponseType:        result.ResponseType,
			ResponseProbability: result.ResponseProbability,
			Confidence:          result.Confidence,
		},
		Patient: DrugPatientEcho{
			CancerType: in.CancerType,
			Stage:      in.Stage,
			Treatment:  in.Treatment,
		},
		Model: ModelMeta{
			Name:            result.Model.Name,
			Accuracy:        result.Model.Accuracy,
			CrossValidation: result.Model.CrossValidation,
		},
		PredictionID: predictionID,
	})
}

// Vocabulary handlers
func (s *Server) handleCancerTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"cancer_types": patient.CancerTypes(),
	})
}

func (s *Server) handleStages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"stages": patient.Stages(),
	})
}

func (s *Server) handleTreatments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"treatments": patient.Treatments(),
	})
}

// respondPredictError maps pipeline errors to HTTP statuses: input
// problems are the caller's fault, model failures are ours.
func respondPredictError(w http.ResponseWriter, err error) {
	var validationErr *patient.ValidationError
	var categoryErr *patient.UnknownCategoryError
	var inferenceErr *predict.InferenceError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, "invalid patient input", err)
	case errors.As(err, &categoryErr):
		respondError(w, http.StatusBadRequest, "unknown category value", err)
	case errors.As(err, &inferenceErr):
		respondError(w, http.StatusInternalServerError, "prediction failed", err)
	default:
		respondError(w, http.StatusInternalServerError, "prediction failed", err)
	}
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if status >= 500 {
		logger.ErrorHttp5xx()
		logger.Error(message, "error", err)
	} else if status >= 400 {
		logger.WarnHttp4xx()
	}

	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.SetLevelFromString(cfg.LogLevel, logger.LevelInfo)

	server, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
