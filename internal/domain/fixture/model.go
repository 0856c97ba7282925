package fixture

import (
	"strconv"
	"strings"
)

// Match status codes as reported by the upstream provider. An empty
// status means the match has not started yet.
const (
	StatusNotStarted = ""
	StatusFinished   = "Finished"
	StatusHalfTime   = "Half Time"
	StatusPostponed  = "Postponed"
	StatusCancelled  = "Cancelled"
)

// Fixture is one scheduled match for a calendar day, normalized from
// the upstream payload. Instances are built once per fetch cycle and
// never mutated afterwards.
type Fixture struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
	League    League `json:"league"`
	HomeTeam  Team   `json:"homeTeam"`
	AwayTeam  Team   `json:"awayTeam"`
}

type League struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Logo     string `json:"logo"`
	Round    string `json:"round"`
	Priority int    `json:"priority"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// GroupKey is the fixturesByLeague map key for this fixture's league.
func (f Fixture) GroupKey() string {
	return GroupKey(f.League.ID, f.League.Name)
}

func GroupKey(leagueID int64, leagueName string) string {
	return strconv.FormatInt(leagueID, 10) + "-" + leagueName
}

func IsFinishedStatus(status string) bool {
	switch strings.TrimSpace(status) {
	case StatusFinished, "FT", "After ET", "After Pen.":
		return true
	default:
		return false
	}
}

func IsLiveStatus(status string) bool {
	status = strings.TrimSpace(status)
	switch status {
	case StatusNotStarted, StatusPostponed, StatusCancelled:
		return false
	}
	return !IsFinishedStatus(status)
}
