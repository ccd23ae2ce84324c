package statistics

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack21/internal/game"
)

// resultKinds is the number of distinct hand results, ResultPending
// included so a slice indexed by game.Result covers every value.
const resultKinds = int(game.ResultSurrender) + 1

// Statistics tracks hand outcome frequencies across simulated rounds.
type Statistics struct {
	Rounds   int
	Hands    int
	Outcomes [resultKinds]int
}

// Add incorporates one finished hand's result.
func (s *Statistics) Add(result game.Result) {
	s.Hands++
	s.Outcomes[result]++
}

// AddRound incorporates every hand of a finished round.
func (s *Statistics) AddRound(players []*game.Player) {
	s.Rounds++
	for _, p := range players {
		for _, h := range p.Hands {
			s.Add(h.Result)
		}
	}
}

// Merge folds another statistics block into this one. Worker-local blocks
// are merged after the workers finish.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	for i, n := range other.Outcomes {
		s.Outcomes[i] += n
	}
}

// Count returns the number of hands that finished with the given result.
func (s *Statistics) Count(result game.Result) int {
	return s.Outcomes[result]
}

// Rate returns the fraction of hands that finished with the given result.
func (s *Statistics) Rate(result game.Result) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Outcomes[result]) / float64(s.Hands)
}

// WinRate returns the fraction of hands the player won, naturals and
// dealer busts included.
func (s *Statistics) WinRate() float64 {
	return s.Rate(game.ResultBlackjack) + s.Rate(game.ResultPlayerWin) + s.Rate(game.ResultDealerBust)
}

// LossRate returns the fraction of hands the player lost, surrenders
// included.
func (s *Statistics) LossRate() float64 {
	return s.Rate(game.ResultDealerWin) + s.Rate(game.ResultPlayerBust) + s.Rate(game.ResultSurrender)
}

// PushRate returns the fraction of hands that tied.
func (s *Statistics) PushRate() float64 {
	return s.Rate(game.ResultPush)
}

// Validate checks internal consistency after a run.
func (s *Statistics) Validate() error {
	total := 0
	for _, n := range s.Outcomes {
		total += n
	}
	if total != s.Hands {
		return fmt.Errorf("outcome counts sum to %d, expected %d hands", total, s.Hands)
	}
	if s.Outcomes[game.ResultPending] != 0 {
		return fmt.Errorf("%d hands finished without a result", s.Outcomes[game.ResultPending])
	}
	if s.Hands < s.Rounds {
		return fmt.Errorf("%d hands across %d rounds", s.Hands, s.Rounds)
	}
	return nil
}

// Summary renders a per-outcome breakdown for display.
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rounds, %d hands\n", s.Rounds, s.Hands)
	for r := game.ResultBlackjack; r <= game.ResultSurrender; r++ {
		fmt.Fprintf(&b, "  %-14s %7d  (%.2f%%)\n", r, s.Outcomes[r], s.Rate(r)*100)
	}
	fmt.Fprintf(&b, "  win %.2f%% / push %.2f%% / loss %.2f%%",
		s.WinRate()*100, s.PushRate()*100, s.LossRate()*100)
	return b.String()
}
