package stack

// Reason tags a scoring mutation with the rule that caused it.
type Reason string

const (
	ReasonPlacement     Reason = "placement"
	ReasonCapstoneClear Reason = "capstone-clear"
	ReasonLevelBonus    Reason = "level-bonus"
	ReasonGroundContact Reason = "ground-contact"
	ReasonTierMismatch  Reason = "tier-mismatch"
)

// RunState is the aggregate counter state for one run. It is owned by the
// Ledger and the progression controller; nothing else mutates it.
type RunState struct {
	Score      int `json:"score"`
	Lives      int `json:"lives"`
	LevelIndex int `json:"level_index"`

	LevelPlacements int `json:"level_placements"`
	LevelMistakes   int `json:"level_mistakes"`

	TotalPlacements int `json:"total_placements"`
	RewardEvents    int `json:"reward_events"`

	MoveSpeed float64 `json:"move_speed"`
	MoveDir   float64 `json:"move_dir"`
}

// LedgerEntry is one recorded scoring mutation, kept for feedback UIs.
type LedgerEntry struct {
	Amount int
	Reason Reason
}

const ledgerJournalCap = 32

// Ledger owns the run's score, lives and counters. Every mutation is
// synchronous and returns the resulting state, so a caller can render the
// outcome without reading the ledger back.
type Ledger struct {
	state   RunState
	journal []LedgerEntry
}

// NewLedger creates a ledger with a zeroed run.
func NewLedger() *Ledger {
	return &Ledger{}
}

// State returns a copy of the current run state.
func (l *Ledger) State() RunState {
	return l.state
}

// Journal returns the most recent scoring entries, oldest first.
func (l *Ledger) Journal() []LedgerEntry {
	out := make([]LedgerEntry, len(l.journal))
	copy(out, l.journal)
	return out
}

func (l *Ledger) record(amount int, reason Reason) {
	l.journal = append(l.journal, LedgerEntry{Amount: amount, Reason: reason})
	if len(l.journal) > ledgerJournalCap {
		l.journal = l.journal[len(l.journal)-ledgerJournalCap:]
	}
}

// Award adds amount to the score.
func (l *Ledger) Award(amount int, reason Reason) RunState {
	l.state.Score += amount
	l.record(amount, reason)
	return l.state
}

// Penalize subtracts amount from the score, flooring at zero.
func (l *Ledger) Penalize(amount int, reason Reason) RunState {
	l.state.Score -= amount
	if l.state.Score < 0 {
		l.state.Score = 0
	}
	l.record(-amount, reason)
	return l.state
}

// RecordPlacement increments the successful-placement counters.
func (l *Ledger) RecordPlacement() RunState {
	l.state.LevelPlacements++
	l.state.TotalPlacements++
	return l.state
}

// RecordMistake increments the wrong-placement counter for the level.
func (l *Ledger) RecordMistake() RunState {
	l.state.LevelMistakes++
	return l.state
}

// RecordReward increments the cross-level reward counter.
func (l *Ledger) RecordReward() RunState {
	l.state.RewardEvents++
	return l.state
}

// CompleteLevel awards the completion bonus, advances the level index and
// resets the per-level counters.
func (l *Ledger) CompleteLevel(bonus int) RunState {
	l.state.Score += bonus
	l.record(bonus, ReasonLevelBonus)
	l.state.LevelIndex++
	l.state.LevelPlacements = 0
	l.state.LevelMistakes = 0
	return l.state
}

// RestartLevel deducts a life and resets the per-level counters. Score and
// cross-level counters persist.
func (l *Ledger) RestartLevel() RunState {
	l.state.Lives--
	l.state.LevelPlacements = 0
	l.state.LevelMistakes = 0
	return l.state
}

// StartNewRun resets everything to a fresh run.
func (l *Ledger) StartNewRun(lives int, moveSpeed float64) RunState {
	l.state = RunState{
		Lives:     lives,
		MoveSpeed: moveSpeed,
		MoveDir:   1,
	}
	l.journal = l.journal[:0]
	return l.state
}

// FlipDirection reverses the oscillation direction.
func (l *Ledger) FlipDirection() RunState {
	l.state.MoveDir = -l.state.MoveDir
	return l.state
}

// SetState replaces the run state wholesale. Used by snapshot restore.
func (l *Ledger) SetState(state RunState) {
	l.state = state
}
