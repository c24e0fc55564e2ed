package team

import (
	"testing"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/player"
)

func TestFind(t *testing.T) {
	teams := []Team{
		{Name: "Alpha", Roster: []player.Record{player.Snapshot{FullName: "a1"}}},
		{Name: "Beta", Roster: []player.Record{player.Snapshot{FullName: "b1"}}},
	}

	got, ok := Find(teams, "Beta")
	if !ok {
		t.Fatalf("expected Beta to be found")
	}
	if got.Name != "Beta" || got.Roster[0].Name() != "b1" {
		t.Fatalf("unexpected team: %+v", got)
	}

	if _, ok := Find(teams, "Gamma"); ok {
		t.Fatalf("expected Gamma to be missing")
	}
}

func TestFind_CaseSensitiveExactMatch(t *testing.T) {
	teams := []Team{{Name: "Alpha"}}

	for _, name := range []string{"alpha", "ALPHA", "Alpha ", " Alpha", ""} {
		if _, ok := Find(teams, name); ok {
			t.Fatalf("expected %q not to match", name)
		}
	}
}

func TestFind_ReturnsFirstMatch(t *testing.T) {
	teams := []Team{
		{Name: "Dup", Roster: []player.Record{player.Snapshot{FullName: "first"}}},
		{Name: "Dup", Roster: []player.Record{player.Snapshot{FullName: "second"}}},
	}

	got, ok := Find(teams, "Dup")
	if !ok {
		t.Fatalf("expected Dup to be found")
	}
	if got.Roster[0].Name() != "first" {
		t.Fatalf("expected first matching team, got roster %v", got.Roster[0].Name())
	}
}

func TestFind_NoTeams(t *testing.T) {
	if _, ok := Find(nil, "Alpha"); ok {
		t.Fatalf("expected no match in empty league")
	}
}
