package teamstats

// Result is one match outcome in a team's rolling window.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

// WindowSize is the rolling window every stat line covers. Averages are
// always total/WindowSize and Last10Results always has exactly this
// many entries, oldest first.
const WindowSize = 10

// TeamStats aggregates a team's last ten matches. Keyed by team name.
type TeamStats struct {
	Team             string   `json:"team"`
	Last10Results    []Result `json:"last10Results"`
	GoalsScored      int      `json:"goalsScored"`
	GoalsConceded    int      `json:"goalsConceded"`
	AvgGoalsScored   float64  `json:"avgGoalsScored"`
	AvgGoalsConceded float64  `json:"avgGoalsConceded"`
	CleanSheets      int      `json:"cleanSheets"`
	FailedToScore    int      `json:"failedToScore"`
	BothTeamsScored  int      `json:"bothTeamsScored"`
	Over25Games      int      `json:"over25Games"`
	Over15Games      int      `json:"over15Games"`
	HomeWins         int      `json:"homeWins,omitempty"`
	AwayWins         int      `json:"awayWins,omitempty"`
	Form             int      `json:"form"`
}
