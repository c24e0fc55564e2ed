package league

import (
	"context"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/team"
)

// Provider opens league sessions at the upstream fantasy data provider. Every call
// returns a new League bound to the query's credentials.
type Provider interface {
	OpenLeague(ctx context.Context, q Query) (League, error)
}

// League is one fetched league season.
type League interface {
	Teams() []team.Team
	FreeAgents(ctx context.Context, limit int) ([]player.Record, error)
}
