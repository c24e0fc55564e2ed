package team

import "github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"

// Team is a fantasy team inside a provider league.
type Team struct {
	Name   string
	Roster []player.Record
}

// Find returns the first team whose display name matches name exactly.
func Find(teams []Team, name string) (Team, bool) {
	for _, t := range teams {
		if t.Name == name {
			return t, true
		}
	}
	return Team{}, false
}
