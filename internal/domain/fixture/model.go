package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format the fixtures endpoint expects.
	DateLayout = "2006-01-02"

	DisplayLimit         = 5
	DefaultLookaheadDays = 2
)

// Query bounds one fixtures lookup. From and To are calendar dates (midnight).
type Query struct {
	LeagueID int
	Season   int
	From     time.Time
	To       time.Time
}

// NewQuery builds the window [today, today+lookaheadDays] in today's location.
func NewQuery(leagueID, season int, today time.Time, lookaheadDays int) Query {
	from := StartOfDay(today)
	return Query{
		LeagueID: leagueID,
		Season:   season,
		From:     from,
		To:       from.AddDate(0, 0, lookaheadDays),
	}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (q Query) FromDate() string {
	return q.From.Format(DateLayout)
}

func (q Query) ToDate() string {
	return q.To.Format(DateLayout)
}

func (q Query) Validate() error {
	if q.LeagueID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if q.Season <= 0 {
		return fmt.Errorf("season must be greater than zero")
	}
	if q.From.IsZero() || q.To.IsZero() {
		return fmt.Errorf("date window is required")
	}
	if q.To.Before(q.From) {
		return fmt.Errorf("to date %s is before from date %s", q.ToDate(), q.FromDate())
	}
	return nil
}

// Fixture is the read-only projection of one upcoming match.
type Fixture struct {
	HomeTeam string
	AwayTeam string
	// Kickoff is the provider timestamp, kept verbatim.
	Kickoff string
}

func (f Fixture) Summary() string {
	return fmt.Sprintf("%s: %s vs %s", f.Kickoff, strings.TrimSpace(f.HomeTeam), strings.TrimSpace(f.AwayTeam))
}

// Record is one entry of the provider response. Err is set when the entry
// could not be projected into a Fixture.
type Record struct {
	Position int
	Fixture  Fixture
	Err      error
}

func (r Record) OK() bool {
	return r.Err == nil
}

// Batch holds every record of one response, in response order.
type Batch struct {
	Records []Record
}

func (b Batch) Len() int {
	return len(b.Records)
}

// Head returns at most n records from the start of the batch.
func (b Batch) Head(n int) []Record {
	if n < 0 {
		n = 0
	}
	if n > len(b.Records) {
		n = len(b.Records)
	}
	return b.Records[:n]
}
