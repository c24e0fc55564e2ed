package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/team"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// FreeAgentLimit caps the free agents returned per request.
const FreeAgentLimit = 100

// TeamDataInput is the validated caller request shared by the roster and free agent
// lookups. TeamName is ignored for free agents.
type TeamDataInput struct {
	LeagueID int64
	Year     int
	ESPNS2   *string
	SWID     *string
	TeamName string
}

func (in TeamDataInput) query() league.Query {
	return league.Query{
		LeagueID:    in.LeagueID,
		Year:        in.Year,
		Credentials: league.NewCredentials(in.ESPNS2, in.SWID),
	}
}

type PlayerDataService struct {
	provider league.Provider
	logger   *logging.Logger
}

func NewPlayerDataService(provider league.Provider, logger *logging.Logger) *PlayerDataService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerDataService{
		provider: provider,
		logger:   logger,
	}
}

// GetRosterData returns the normalized roster of the named team, in provider order.
func (s *PlayerDataService) GetRosterData(ctx context.Context, in TeamDataInput) ([]player.Data, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerDataService.GetRosterData",
		attribute.Int64("league.id", in.LeagueID),
		attribute.Int("league.year", in.Year),
	)
	defer span.End()

	lg, err := s.openLeague(ctx, in)
	if err != nil {
		return nil, err
	}

	t, ok := team.Find(lg.Teams(), in.TeamName)
	if !ok {
		return nil, fmt.Errorf("%w: team=%q league=%d year=%d", ErrTeamNotFound, in.TeamName, in.LeagueID, in.Year)
	}

	s.logger.DebugContext(ctx, "roster fetched",
		"league_id", in.LeagueID,
		"year", in.Year,
		"players", len(t.Roster),
	)

	return player.NormalizeAll(t.Roster), nil
}

// GetFreeAgentData returns at most FreeAgentLimit normalized free agents, in provider
// order.
func (s *PlayerDataService) GetFreeAgentData(ctx context.Context, in TeamDataInput) ([]player.Data, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerDataService.GetFreeAgentData",
		attribute.Int64("league.id", in.LeagueID),
		attribute.Int("league.year", in.Year),
	)
	defer span.End()

	lg, err := s.openLeague(ctx, in)
	if err != nil {
		return nil, err
	}

	agents, err := lg.FreeAgents(ctx, FreeAgentLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch free agents league=%d year=%d: %w", in.LeagueID, in.Year, classifyProviderError(err))
	}
	if len(agents) > FreeAgentLimit {
		agents = agents[:FreeAgentLimit]
	}

	s.logger.DebugContext(ctx, "free agents fetched",
		"league_id", in.LeagueID,
		"year", in.Year,
		"players", len(agents),
	)

	return player.NormalizeAll(agents), nil
}

func (s *PlayerDataService) openLeague(ctx context.Context, in TeamDataInput) (league.League, error) {
	lg, err := s.provider.OpenLeague(ctx, in.query())
	if err != nil {
		return nil, fmt.Errorf("open league=%d year=%d: %w", in.LeagueID, in.Year, classifyProviderError(err))
	}
	if lg == nil {
		return nil, fmt.Errorf("%w: open league=%d year=%d returned no league", ErrProvider, in.LeagueID, in.Year)
	}
	return lg, nil
}

// classifyProviderError makes every provider failure match ErrProvider unless the
// provider already classified it.
func classifyProviderError(err error) error {
	if errors.Is(err, ErrProvider) || errors.Is(err, ErrDependencyUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrProvider, err)
}
