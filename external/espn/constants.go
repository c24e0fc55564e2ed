package espn

const (
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"

	// Seasons before this year are only served from the league history endpoint.
	firstCurrentEndpointSeason = 2018
	// The player pool view does not exist for older seasons.
	firstFreeAgentSeason = 2019

	maxResponseBytes = 6 << 20
	defaultInjury    = "ACTIVE"
)

var leagueViews = []string{"mTeam", "mRoster", "mSettings"}

var proTeamAbbrev = map[int]string{
	0:  "FA",
	1:  "ATL",
	2:  "BOS",
	3:  "NOP",
	4:  "CHI",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GSW",
	10: "HOU",
	11: "IND",
	12: "LAC",
	13: "LAL",
	14: "MIA",
	15: "MIL",
	16: "MIN",
	17: "BKN",
	18: "NYK",
	19: "ORL",
	20: "PHL",
	21: "PHO",
	22: "POR",
	23: "SAC",
	24: "SAS",
	25: "OKC",
	26: "UTA",
	27: "WAS",
	28: "TOR",
	29: "MEM",
	30: "CHA",
}

var slotNames = map[int]string{
	0:  "PG",
	1:  "SG",
	2:  "SF",
	3:  "PF",
	4:  "C",
	5:  "G",
	6:  "F",
	7:  "SG/SF",
	8:  "G/F",
	9:  "PF/C",
	10: "F/C",
	11: "UT",
	12: "BE",
	13: "IR",
	14: "",
	15: "Rookie",
}
