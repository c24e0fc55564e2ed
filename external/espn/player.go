package espn

import (
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
)

func toRecord(p *playerEnvelope, year int) player.Record {
	if p == nil {
		return player.Snapshot{Injury: defaultInjury, Slots: []string{}}
	}

	injury := strings.TrimSpace(p.InjuryStatus)
	if injury == "" {
		injury = defaultInjury
	}

	return player.Snapshot{
		FullName:   p.FullName,
		Average:    seasonAverage(p.Stats, year),
		ProTeamAbv: proTeamAbbrev[p.ProTeamID],
		Injury:     injury,
		Slots:      eligibleSlotNames(p.EligibleSlots),
	}
}

// seasonAverage reads the applied average of the full-season split ("00" + year).
func seasonAverage(stats []statEnvelope, year int) float64 {
	key := "00" + strconv.Itoa(year)
	for _, s := range stats {
		if s.ID == key {
			return round2(s.AppliedAverage)
		}
	}
	return 0
}

func eligibleSlotNames(ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := slotNames[id]
		if !ok || name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func teamDisplayName(t teamEnvelope) string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return t.Name
	}
	return strings.TrimSpace(t.Location + " " + t.Nickname)
}
