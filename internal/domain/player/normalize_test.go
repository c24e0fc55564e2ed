package player

import (
	"reflect"
	"testing"
)

func TestNormalizeProTeam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PHL", want: "PHI"},
		{in: "PHO", want: "PHX"},
		{in: "PHI", want: "PHI"},
		{in: "PHX", want: "PHX"},
		{in: "BOS", want: "BOS"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeProTeam(tt.in)
			if got != tt.want {
				t.Fatalf("NormalizeProTeam(%q)=%q want=%q", tt.in, got, tt.want)
			}
			if again := NormalizeProTeam(got); again != got {
				t.Fatalf("expected idempotent normalization, got %q then %q", got, again)
			}
		})
	}
}

func TestValidPositions_AlwaysEndsWithFlexSlots(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{"BE", "IR", "UT"},
		{"PG", "SG", "G", "UT", "BE"},
		{"C", "PF/C", "F/C", "PF", "F"},
		{"SF", "SF", "BE1"},
	}

	for _, in := range inputs {
		got := ValidPositions(in)
		if len(got) < len(FlexSlots) {
			t.Fatalf("ValidPositions(%v) too short: %v", in, got)
		}
		tail := got[len(got)-len(FlexSlots):]
		if !reflect.DeepEqual(tail, FlexSlots) {
			t.Fatalf("ValidPositions(%v) tail=%v want=%v", in, tail, FlexSlots)
		}
	}
}

func TestValidPositions_FiltersAndKeepsOrder(t *testing.T) {
	got := ValidPositions([]string{"C", "PG", "SG/SF", "BE", "G", "UT", "F", "IR"})
	want := []string{"C", "PG", "G", "F", "BE1", "BE2", "BE3", "UT1", "UT2", "UT3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected positions: got=%v want=%v", got, want)
	}
}

func TestValidPositions_DoesNotAliasFlexSlots(t *testing.T) {
	got := ValidPositions(nil)
	got[0] = "mutated"
	if FlexSlots[0] != "BE1" {
		t.Fatalf("expected FlexSlots to stay untouched, got %v", FlexSlots)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Snapshot{
		FullName:   "X",
		Average:    10.5,
		ProTeamAbv: "PHL",
		Injury:     "ACTIVE",
		Slots:      []string{"PG", "BE"},
	})

	want := Data{
		Name:           "X",
		AvgPoints:      10.5,
		Team:           "PHI",
		InjuryStatus:   "ACTIVE",
		ValidPositions: []string{"PG", "BE1", "BE2", "BE3", "UT1", "UT2", "UT3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected normalized player: got=%+v want=%+v", got, want)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	records := []Record{
		Snapshot{FullName: "first", ProTeamAbv: "PHO"},
		Snapshot{FullName: "second", ProTeamAbv: "LAL"},
		Snapshot{FullName: "third", ProTeamAbv: "PHL"},
	}

	got := NormalizeAll(records)
	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %d", len(got))
	}
	for i, name := range []string{"first", "second", "third"} {
		if got[i].Name != name {
			t.Fatalf("unexpected order at %d: got=%s want=%s", i, got[i].Name, name)
		}
	}
	if got[0].Team != "PHX" || got[2].Team != "PHI" {
		t.Fatalf("unexpected team codes: %s %s", got[0].Team, got[2].Team)
	}
}

func TestNormalizeAll_EmptyIsNotNil(t *testing.T) {
	got := NormalizeAll(nil)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
