package espn

type leagueEnvelope struct {
	ID              int64          `json:"id"`
	SeasonID        int            `json:"seasonId"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	Teams           []teamEnvelope `json:"teams"`
	Settings        struct {
		Name string `json:"name"`
	} `json:"settings"`
}

type teamEnvelope struct {
	ID       int64  `json:"id"`
	Abbrev   string `json:"abbrev"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Nickname string `json:"nickname"`
	Roster   struct {
		Entries []rosterEntry `json:"entries"`
	} `json:"roster"`
}

type rosterEntry struct {
	PlayerID        int64           `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerPoolEntry struct {
	Player *playerEnvelope `json:"player"`
}

type freeAgentEnvelope struct {
	Players []freeAgentEntry `json:"players"`
}

type freeAgentEntry struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	Player          *playerEnvelope `json:"player"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerEnvelope struct {
	ID            int64          `json:"id"`
	FullName      string         `json:"fullName"`
	ProTeamID     int            `json:"proTeamId"`
	InjuryStatus  string         `json:"injuryStatus"`
	EligibleSlots []int          `json:"eligibleSlots"`
	Stats         []statEnvelope `json:"stats"`
}

type statEnvelope struct {
	ID              string  `json:"id"`
	SeasonID        int     `json:"seasonId"`
	StatSplitTypeID int     `json:"statSplitTypeId"`
	AppliedAverage  float64 `json:"appliedAverage"`
	AppliedTotal    float64 `json:"appliedTotal"`
}

type playerFilter struct {
	Players playerFilterBody `json:"players"`
}

type playerFilterBody struct {
	FilterStatus   filterValues `json:"filterStatus"`
	Limit          int          `json:"limit"`
	SortPercOwned  sortOrder    `json:"sortPercOwned"`
	SortDraftRanks sortOrder    `json:"sortDraftRanks"`
}

type filterValues struct {
	Value []string `json:"value"`
}

type sortOrder struct {
	SortPriority int    `json:"sortPriority"`
	SortAsc      bool   `json:"sortAsc"`
	Value        string `json:"value,omitempty"`
}
