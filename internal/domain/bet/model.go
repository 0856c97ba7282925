package bet

import (
	"fmt"
	"time"
)

// Result is the settlement state of a bet. A bet starts pending and is
// settled exactly once into win, loss or void.
type Result string

const (
	ResultPending Result = "pending"
	ResultWin     Result = "win"
	ResultLoss    Result = "loss"
	ResultVoid    Result = "void"
)

func ParseResult(value string) (Result, error) {
	switch Result(value) {
	case ResultPending, ResultWin, ResultLoss, ResultVoid:
		return Result(value), nil
	default:
		return "", fmt.Errorf("unknown bet result %q", value)
	}
}

// Bet is one tracked wager.
type Bet struct {
	ID              string
	UserID          string
	MatchName       string
	League          string
	BetType         string
	Odds            float64
	Stake           float64
	PotentialReturn float64
	Result          Result
	ProfitLoss      float64
	CreatedAt       time.Time
	SettledAt       *time.Time
}

// PotentialReturn is the gross payout for a winning bet.
func PotentialReturn(stake, odds float64) float64 {
	return stake * odds
}

// ProfitFor returns the bankroll delta a settlement produces: net
// winnings on a win, the lost stake on a loss, zero on a void.
func ProfitFor(result Result, stake, odds float64) float64 {
	switch result {
	case ResultWin:
		return stake * (odds - 1)
	case ResultLoss:
		return -stake
	default:
		return 0
	}
}

// Settle transitions a pending bet into a terminal result at the given
// instant. Settling anything but a pending bet is an error.
func (b *Bet) Settle(result Result, at time.Time) error {
	if result == ResultPending {
		return fmt.Errorf("cannot settle into pending")
	}
	if b.Result != ResultPending {
		return fmt.Errorf("bet %s already settled as %s", b.ID, b.Result)
	}

	b.Result = result
	b.ProfitLoss = ProfitFor(result, b.Stake, b.Odds)
	settledAt := at.UTC()
	b.SettledAt = &settledAt
	return nil
}

// Stats aggregates a user's betting record.
type Stats struct {
	TotalBets   int     `json:"totalBets"`
	PendingBets int     `json:"pendingBets"`
	WonBets     int     `json:"wonBets"`
	LostBets    int     `json:"lostBets"`
	TotalProfit float64 `json:"totalProfit"`
	TotalStaked float64 `json:"totalStaked"`
	WinRate     float64 `json:"winRate"`
	ROI         float64 `json:"roi"`
}

// ComputeStats derives the aggregate record. Win rate and stake totals
// only count settled non-void bets; profit counts everything.
func ComputeStats(bets []Bet) Stats {
	stats := Stats{TotalBets: len(bets)}

	settled := 0
	for _, b := range bets {
		stats.TotalProfit += b.ProfitLoss
		switch b.Result {
		case ResultPending:
			stats.PendingBets++
		case ResultWin:
			stats.WonBets++
		case ResultLoss:
			stats.LostBets++
		}
		if b.Result != ResultPending && b.Result != ResultVoid {
			settled++
			stats.TotalStaked += b.Stake
		}
	}

	if settled > 0 {
		stats.WinRate = float64(stats.WonBets) / float64(settled) * 100
	}
	if stats.TotalStaked > 0 {
		stats.ROI = stats.TotalProfit / stats.TotalStaked * 100
	}

	return stats
}
