// internal/component/game_state.go
package component

// RunPhase is the game controller's state.
type RunPhase int

const (
	NotStarted RunPhase = iota
	Running
	Ended
)

func (p RunPhase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Economy holds the player's counters.
type Economy struct {
	Cash  int
	Score int
	Lives int
}

// Reward credits a kill.
func (e *Economy) Reward(worth int) {
	e.Cash += worth
	e.Score += worth
}

// Spend debits cost if affordable.
func (e *Economy) Spend(cost int) bool {
	if cost > e.Cash {
		return false
	}
	e.Cash -= cost
	return true
}
