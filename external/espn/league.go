package espn

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/team"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
)

// session is one fetched league season together with the credentials that opened it.
type session struct {
	client          *Client
	query           league.Query
	scoringPeriodID int
	teams           []team.Team
}

func newSession(c *Client, q league.Query, env leagueEnvelope) *session {
	teams := make([]team.Team, 0, len(env.Teams))
	for _, t := range env.Teams {
		roster := make([]player.Record, 0, len(t.Roster.Entries))
		for _, entry := range t.Roster.Entries {
			roster = append(roster, toRecord(entry.PlayerPoolEntry.Player, q.Year))
		}
		teams = append(teams, team.Team{
			Name:   teamDisplayName(t),
			Roster: roster,
		})
	}

	return &session{
		client:          c,
		query:           q,
		scoringPeriodID: env.ScoringPeriodID,
		teams:           teams,
	}
}

func (s *session) Teams() []team.Team {
	return s.teams
}

// FreeAgents lists free agents and waiver players ordered by percent owned.
func (s *session) FreeAgents(ctx context.Context, limit int) ([]player.Record, error) {
	if s.query.Year < firstFreeAgentSeason {
		return nil, crerr.Wrapf(usecase.ErrProvider, "espn free_agents: not available for season %d", s.query.Year)
	}
	if limit <= 0 {
		return []player.Record{}, nil
	}

	filter, err := sonic.Marshal(newFreeAgentFilter(limit))
	if err != nil {
		return nil, crerr.Wrapf(usecase.ErrProvider, "espn free_agents: encode filter: %s", err.Error())
	}

	path, params := s.client.leagueEndpoint(s.query)
	params.Set("view", "kona_player_info")
	if s.scoringPeriodID > 0 {
		params.Set("scoringPeriodId", strconv.Itoa(s.scoringPeriodID))
	}
	header := http.Header{}
	header.Set("x-fantasy-filter", string(filter))

	var env freeAgentEnvelope
	err = s.client.doJSON(ctx, requestSpec{
		operation:   "free_agents",
		path:        path,
		query:       params,
		header:      header,
		credentials: s.query.Credentials,
	}, &env)
	if err != nil {
		return nil, err
	}

	out := make([]player.Record, 0, len(env.Players))
	for _, entry := range env.Players {
		p := entry.Player
		if p == nil {
			p = entry.PlayerPoolEntry.Player
		}
		out = append(out, toRecord(p, s.query.Year))
	}
	return out, nil
}

func newFreeAgentFilter(limit int) playerFilter {
	return playerFilter{
		Players: playerFilterBody{
			FilterStatus:   filterValues{Value: []string{"FREEAGENT", "WAIVERS"}},
			Limit:          limit,
			SortPercOwned:  sortOrder{SortPriority: 1, SortAsc: false},
			SortDraftRanks: sortOrder{SortPriority: 100, SortAsc: true, Value: "STANDARD"},
		},
	}
}
