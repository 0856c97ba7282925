package memory

import (
	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
)

// SeedTeamStats returns the curated last-ten-games stat lines used when
// no stats database is configured.
func SeedTeamStats() []teamstats.TeamStats {
	return []teamstats.TeamStats{
		{Team: "Flamengo", Last10Results: results("WWDWLWWDWL"), GoalsScored: 22, GoalsConceded: 11, AvgGoalsScored: 2.2, AvgGoalsConceded: 1.1, CleanSheets: 4, FailedToScore: 1, BothTeamsScored: 6, Over25Games: 7, Over15Games: 9, HomeWins: 5, Form: 75},
		{Team: "Palmeiras", Last10Results: results("WDWWWLDWLW"), GoalsScored: 19, GoalsConceded: 9, AvgGoalsScored: 1.9, AvgGoalsConceded: 0.9, CleanSheets: 5, FailedToScore: 2, BothTeamsScored: 5, Over25Games: 6, Over15Games: 8, AwayWins: 3, Form: 70},
		{Team: "Corinthians", Last10Results: results("DWLWDWLWDW"), GoalsScored: 17, GoalsConceded: 14, AvgGoalsScored: 1.7, AvgGoalsConceded: 1.4, CleanSheets: 2, FailedToScore: 2, BothTeamsScored: 7, Over25Games: 8, Over15Games: 9, HomeWins: 4, Form: 60},
		{Team: "São Paulo", Last10Results: results("WLWDWLWDLW"), GoalsScored: 15, GoalsConceded: 12, AvgGoalsScored: 1.5, AvgGoalsConceded: 1.2, CleanSheets: 3, FailedToScore: 3, BothTeamsScored: 6, Over25Games: 5, Over15Games: 7, AwayWins: 2, Form: 55},
		{Team: "Manchester City", Last10Results: results("WWWDWWLWWW"), GoalsScored: 28, GoalsConceded: 8, AvgGoalsScored: 2.8, AvgGoalsConceded: 0.8, CleanSheets: 5, FailedToScore: 0, BothTeamsScored: 5, Over25Games: 8, Over15Games: 10, HomeWins: 6, Form: 88},
		{Team: "Liverpool", Last10Results: results("WWDWWWDWLW"), GoalsScored: 25, GoalsConceded: 10, AvgGoalsScored: 2.5, AvgGoalsConceded: 1.0, CleanSheets: 4, FailedToScore: 1, BothTeamsScored: 6, Over25Games: 8, Over15Games: 9, AwayWins: 5, Form: 82},
		{Team: "Grêmio", Last10Results: results("WDWLWDWWDL"), GoalsScored: 16, GoalsConceded: 11, AvgGoalsScored: 1.6, AvgGoalsConceded: 1.1, CleanSheets: 3, FailedToScore: 2, BothTeamsScored: 6, Over25Games: 5, Over15Games: 8, HomeWins: 4, Form: 62},
		{Team: "Internacional", Last10Results: results("LWDWLWDWLD"), GoalsScored: 14, GoalsConceded: 13, AvgGoalsScored: 1.4, AvgGoalsConceded: 1.3, CleanSheets: 2, FailedToScore: 3, BothTeamsScored: 6, Over25Games: 4, Over15Games: 7, AwayWins: 2, Form: 50},
		{Team: "Atlético-MG", Last10Results: results("WWLWDWWLWD"), GoalsScored: 20, GoalsConceded: 12, AvgGoalsScored: 2.0, AvgGoalsConceded: 1.2, CleanSheets: 3, FailedToScore: 1, BothTeamsScored: 7, Over25Games: 7, Over15Games: 9, HomeWins: 5, Form: 68},
		{Team: "Cruzeiro", Last10Results: results("DLWDWLDWLW"), GoalsScored: 13, GoalsConceded: 14, AvgGoalsScored: 1.3, AvgGoalsConceded: 1.4, CleanSheets: 2, FailedToScore: 3, BothTeamsScored: 6, Over25Games: 4, Over15Games: 6, AwayWins: 2, Form: 48},
		{Team: "Real Madrid", Last10Results: results("WWWDWLWWDW"), GoalsScored: 24, GoalsConceded: 9, AvgGoalsScored: 2.4, AvgGoalsConceded: 0.9, CleanSheets: 4, FailedToScore: 1, BothTeamsScored: 5, Over25Games: 7, Over15Games: 9, HomeWins: 6, Form: 80},
		{Team: "Barcelona", Last10Results: results("WDWWLWWDWL"), GoalsScored: 22, GoalsConceded: 11, AvgGoalsScored: 2.2, AvgGoalsConceded: 1.1, CleanSheets: 3, FailedToScore: 1, BothTeamsScored: 6, Over25Games: 7, Over15Games: 9, AwayWins: 4, Form: 72},
		{Team: "Juventus", Last10Results: results("DWDLWDWDLW"), GoalsScored: 14, GoalsConceded: 10, AvgGoalsScored: 1.4, AvgGoalsConceded: 1.0, CleanSheets: 4, FailedToScore: 2, BothTeamsScored: 5, Over25Games: 3, Over15Games: 6, HomeWins: 3, Form: 52},
		{Team: "Inter", Last10Results: results("WWWDWWLWDW"), GoalsScored: 21, GoalsConceded: 8, AvgGoalsScored: 2.1, AvgGoalsConceded: 0.8, CleanSheets: 5, FailedToScore: 1, BothTeamsScored: 4, Over25Games: 6, Over15Games: 8, AwayWins: 5, Form: 78},
		{Team: "Bayern Munich", Last10Results: results("WWWWDWWLWW"), GoalsScored: 32, GoalsConceded: 12, AvgGoalsScored: 3.2, AvgGoalsConceded: 1.2, CleanSheets: 3, FailedToScore: 0, BothTeamsScored: 7, Over25Games: 9, Over15Games: 10, HomeWins: 6, Form: 85},
		{Team: "Dortmund", Last10Results: results("WLWWDLWWLW"), GoalsScored: 24, GoalsConceded: 18, AvgGoalsScored: 2.4, AvgGoalsConceded: 1.8, CleanSheets: 2, FailedToScore: 1, BothTeamsScored: 8, Over25Games: 8, Over15Games: 9, AwayWins: 3, Form: 62},
		{Team: "PSG", Last10Results: results("WWWDWWWDWL"), GoalsScored: 26, GoalsConceded: 8, AvgGoalsScored: 2.6, AvgGoalsConceded: 0.8, CleanSheets: 5, FailedToScore: 0, BothTeamsScored: 5, Over25Games: 7, Over15Games: 10, HomeWins: 6, Form: 84},
		{Team: "Lyon", Last10Results: results("DWLWDLWDWL"), GoalsScored: 15, GoalsConceded: 14, AvgGoalsScored: 1.5, AvgGoalsConceded: 1.4, CleanSheets: 2, FailedToScore: 2, BothTeamsScored: 7, Over25Games: 5, Over15Games: 7, AwayWins: 2, Form: 48},
		{Team: "Galatasaray", Last10Results: results("WWDWLWWDWL"), GoalsScored: 21, GoalsConceded: 12, AvgGoalsScored: 2.1, AvgGoalsConceded: 1.2, CleanSheets: 3, FailedToScore: 1, BothTeamsScored: 7, Over25Games: 7, Over15Games: 9, HomeWins: 5, Form: 72},
		{Team: "Fenerbahçe", Last10Results: results("WDWWDLWWLW"), GoalsScored: 19, GoalsConceded: 11, AvgGoalsScored: 1.9, AvgGoalsConceded: 1.1, CleanSheets: 3, FailedToScore: 1, BothTeamsScored: 6, Over25Games: 6, Over15Games: 8, AwayWins: 4, Form: 68},
		{Team: "Al-Hilal", Last10Results: results("WWWWDWWLWW"), GoalsScored: 28, GoalsConceded: 9, AvgGoalsScored: 2.8, AvgGoalsConceded: 0.9, CleanSheets: 4, FailedToScore: 0, BothTeamsScored: 6, Over25Games: 8, Over15Games: 10, HomeWins: 6, Form: 86},
		{Team: "Al-Nassr", Last10Results: results("WDWLWWDWLW"), GoalsScored: 22, GoalsConceded: 12, AvgGoalsScored: 2.2, AvgGoalsConceded: 1.2, CleanSheets: 3, FailedToScore: 1, BothTeamsScored: 7, Over25Games: 7, Over15Games: 9, AwayWins: 4, Form: 70},
	}
}

// results expands "WWDWL..." into the typed result window, oldest first.
func results(compact string) []teamstats.Result {
	out := make([]teamstats.Result, 0, len(compact))
	for _, r := range compact {
		out = append(out, teamstats.Result(r))
	}
	return out
}
