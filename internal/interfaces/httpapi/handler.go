package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
)

const helloMessage = "Hello, world!"

type Handler struct {
	playerDataService *usecase.PlayerDataService
	logger            *logging.Logger
	validator         *validator.Validate
	openAPIJSON       func() ([]byte, error)
}

func NewHandler(playerDataService *usecase.PlayerDataService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerDataService: playerDataService,
		logger:            logger,
		validator:         newValidator(),
		openAPIJSON:       sync.OnceValues(convertOpenAPISpec),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Test is the legacy liveness probe kept for existing clients.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Test")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, helloMessage)
}

func (h *Handler) GetRosterData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterData")
	defer span.End()

	req, err := h.decodeTeamDataRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerDataService.GetRosterData(ctx, req.toInput())
	if err != nil {
		h.logFailure(ctx, "get roster data failed", *req.LeagueID, *req.Year, err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) GetFreeAgentData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFreeAgentData")
	defer span.End()

	req, err := h.decodeTeamDataRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerDataService.GetFreeAgentData(ctx, req.toInput())
	if err != nil {
		h.logFailure(ctx, "get free agent data failed", *req.LeagueID, *req.Year, err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playersToDTO(items))
}

// logFailure logs upstream and lookup failures at warn and anything unexpected at error.
func (h *Handler) logFailure(ctx context.Context, msg string, leagueID int64, year int, err error) {
	args := []any{
		"league_id", leagueID,
		"year", year,
		"request_id", requestIDFromContext(ctx),
		"error", err,
	}

	switch {
	case errors.Is(err, usecase.ErrProvider),
		errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrDependencyUnavailable):
		h.logger.WarnContext(ctx, msg, args...)
	default:
		h.logger.ErrorContext(ctx, msg, args...)
	}
}

type playerDataDTO struct {
	Name           string   `json:"name"`
	AvgPoints      float64  `json:"avg_points"`
	Team           string   `json:"team"`
	InjuryStatus   string   `json:"injury_status"`
	ValidPositions []string `json:"valid_positions"`
}

func playersToDTO(items []player.Data) []playerDataDTO {
	out := make([]playerDataDTO, 0, len(items))
	for _, item := range items {
		positions := item.ValidPositions
		if positions == nil {
			positions = []string{}
		}
		out = append(out, playerDataDTO{
			Name:           item.Name,
			AvgPoints:      item.AvgPoints,
			Team:           item.Team,
			InjuryStatus:   item.InjuryStatus,
			ValidPositions: positions,
		})
	}
	return out
}
