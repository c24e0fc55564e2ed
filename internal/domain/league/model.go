package league

import "strings"

// Credentials are the ESPN session cookies for private leagues. A nil field means the
// cookie is not sent.
type Credentials struct {
	ESPNS2 *string
	SWID   *string
}

// NewCredentials drops absent and blank values.
func NewCredentials(espnS2, swid *string) Credentials {
	return Credentials{
		ESPNS2: normalizeCredential(espnS2),
		SWID:   normalizeCredential(swid),
	}
}

func normalizeCredential(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	out := *v
	return &out
}

// Query selects one league season at the provider.
type Query struct {
	LeagueID    int64
	Year        int
	Credentials Credentials
}
