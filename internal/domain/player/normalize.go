package player

var proTeamCorrections = map[string]string{
	"PHL": "PHI",
	"PHO": "PHX",
}

// NormalizeProTeam maps provider team abbreviations onto the canonical codes.
func NormalizeProTeam(code string) string {
	if corrected, ok := proTeamCorrections[code]; ok {
		return corrected
	}
	return code
}

// ValidPositions keeps the starting positions of slots in their original order and
// appends FlexSlots.
func ValidPositions(slots []string) []string {
	out := make([]string, 0, len(slots)+len(FlexSlots))
	for _, slot := range slots {
		if _, ok := StartingPositions[Position(slot)]; ok {
			out = append(out, slot)
		}
	}
	return append(out, FlexSlots...)
}

func Normalize(r Record) Data {
	return Data{
		Name:           r.Name(),
		AvgPoints:      r.AvgPoints(),
		Team:           NormalizeProTeam(r.ProTeam()),
		InjuryStatus:   r.InjuryStatus(),
		ValidPositions: ValidPositions(r.EligibleSlots()),
	}
}

// NormalizeAll preserves the order of records.
func NormalizeAll(records []Record) []Data {
	out := make([]Data, 0, len(records))
	for _, r := range records {
		out = append(out, Normalize(r))
	}
	return out
}

// Snapshot is an in-memory Record, used for fixtures and stub providers.
type Snapshot struct {
	FullName   string
	Average    float64
	ProTeamAbv string
	Injury     string
	Slots      []string
}

func (s Snapshot) Name() string            { return s.FullName }
func (s Snapshot) AvgPoints() float64      { return s.Average }
func (s Snapshot) ProTeam() string         { return s.ProTeamAbv }
func (s Snapshot) InjuryStatus() string    { return s.Injury }
func (s Snapshot) EligibleSlots() []string { return s.Slots }
