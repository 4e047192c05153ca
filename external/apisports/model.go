package apisports

import "encoding/json"

// fixturesEnvelope is the top level of every API-Football v3 response.
// Records stay raw so one bad entry cannot fail the whole decode.
type fixturesEnvelope struct {
	Get        string            `json:"get"`
	Results    int               `json:"results"`
	Errors     any               `json:"errors"` // [] when empty, object keyed by field otherwise
	Paging     paging            `json:"paging"`
	Response   []json.RawMessage `json:"response"`
	Parameters map[string]any    `json:"parameters"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type fixtureItem struct {
	Fixture fixtureInfo  `json:"fixture"`
	League  leagueInfo   `json:"league"`
	Teams   fixtureTeams `json:"teams"`
}

type fixtureInfo struct {
	ID        int64        `json:"id"`
	Referee   *string      `json:"referee"`
	Timezone  string       `json:"timezone"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Timestamp int64        `json:"timestamp"`
	Venue     venueInfo    `json:"venue"`
	Status    fixtureState `json:"status"`
}

type venueInfo struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

type fixtureState struct {
	Long    string `json:"long"`
	Short   string `json:"short"` // NS, TBD, 1H, FT, ...
	Elapsed *int   `json:"elapsed"`
}

type leagueInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type fixtureTeams struct {
	Home teamInfo `json:"home"`
	Away teamInfo `json:"away"`
}

type teamInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"required"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}
