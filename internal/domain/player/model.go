package player

// Position is a fantasy basketball lineup slot code as reported by the provider.
type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
	PositionGuard         Position = "G"
	PositionForward       Position = "F"
)

// StartingPositions are the provider slots kept in ValidPositions.
var StartingPositions = map[Position]struct{}{
	PositionPointGuard:    {},
	PositionShootingGuard: {},
	PositionSmallForward:  {},
	PositionPowerForward:  {},
	PositionCenter:        {},
	PositionGuard:         {},
	PositionForward:       {},
}

// FlexSlots are the bench and utility roster slots every player may fill.
var FlexSlots = []string{"BE1", "BE2", "BE3", "UT1", "UT2", "UT3"}

// Record is the read-only view of a provider player the service depends on.
type Record interface {
	Name() string
	AvgPoints() float64
	ProTeam() string
	InjuryStatus() string
	EligibleSlots() []string
}

// Data is the normalized player shape returned to callers.
type Data struct {
	Name           string   `json:"name"`
	AvgPoints      float64  `json:"avg_points"`
	Team           string   `json:"team"`
	InjuryStatus   string   `json:"injury_status"`
	ValidPositions []string `json:"valid_positions"`
}
