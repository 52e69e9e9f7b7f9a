package http

import (
	"adventbot/internal/domain"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

type runsGetter interface {
	GetRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}

type Handler struct {
	log          *slog.Logger
	runsGetter   runsGetter
	defaultLimit int
}

func NewHandler(log *slog.Logger, getter runsGetter, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Handler{
		log:          log,
		runsGetter:   getter,
		defaultLimit: defaultLimit,
	}
}

// getRuns - хендлер для эндпоинта GET /api/runs
func (h *Handler) getRuns(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getRuns"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)
	if r.Method != http.MethodGet {
		log.Warn("method not allowed")
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			log.Warn("invalid limit parameter", slog.String("limit", limitStr))
			respondWithError(w, http.StatusBadRequest, "Invalid 'limit' parameter")
			return
		}
	}

	runs, err := h.runsGetter.GetRuns(r.Context(), limit)
	if err != nil {
		log.Error("Failed to get runs", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if runs == nil {
		runs = []domain.RunRecord{}
	}

	respondWithJSON(w, http.StatusOK, runs)
}

// healthCheck - хендлер для проверки живости сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
