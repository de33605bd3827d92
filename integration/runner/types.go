package runner

import (
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/tanelorn/pkg/actor"
)

// Special command values that do not map to a single game call
const (
	ResetGameCommand = "RESET_GAME"
)

// TestSuite defines a complete scripted playthrough
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name       string        `json:"name"`
	Seed       int64         `json:"seed,omitempty"`        // Dice seed, used for regular tests
	SeedPlayer *actor.Player `json:"seed_player,omitempty"` // Starting character, used for regular tests
	Steps      []TestStep    `json:"steps,omitempty"`       // Used for regular tests
	Cases      []string      `json:"cases,omitempty"`       // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep defines a single command and its expected outcomes
// Use command: "RESET_GAME" to restart from the seed player
//
// Commands:
//
//	fight | bounty <i> | raid <castle> | attack | run | auto-fight
//	delve <zone> | proceed | continue | accept | decline | deeper | retreat | buy <i> | auto-delve
//	weapon <id> | armor <id> | defense <id> | heal | scout <zone> | refresh-bounties
type TestStep struct {
	Name         string       `json:"name,omitempty"`
	Command      string       `json:"command"`
	Expectations Expectations `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	// Player properties - aligned with pkg/actor/player.go
	Level          *int     `json:"level,omitempty"`
	MinLevel       *int     `json:"min_level,omitempty"`
	HP             *int     `json:"hp,omitempty"`
	MinHP          *int     `json:"min_hp,omitempty"`
	Gold           *int     `json:"gold,omitempty"`
	MinGold        *int     `json:"min_gold,omitempty"`
	TurnsRemaining *int     `json:"turns_remaining,omitempty"`
	Weapon         *string  `json:"weapon,omitempty"`
	Armor          *string  `json:"armor,omitempty"`
	Relic          *string  `json:"relic,omitempty"`
	Defenses       []string `json:"defenses,omitempty"`       // Owned castle defenses (order independent)
	ClearedBosses  []string `json:"cleared_bosses,omitempty"` // Cleared zones (order independent)
	Bounties       *int     `json:"bounties,omitempty"`       // Posted bounty count

	// Session state
	Busy    *bool   `json:"busy,omitempty"`
	Phase   *string `json:"phase,omitempty"`   // Delve phase while a delve is running
	Outcome *string `json:"outcome,omitempty"` // Last finished combat or delve outcome
	Traded  *bool   `json:"traded,omitempty"`  // Whether a market command changed the player

	// Errors and messages
	Error            string   `json:"error,omitempty"` // Substring of the expected command error
	MessagesContain  []string `json:"messages_contain,omitempty"`
	MessagesNotMatch string   `json:"messages_not_match,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName string
	StepName string
	Success  bool
	Error    error
	Duration time.Duration
	Messages []string
	IsReset  bool // True if this was a RESET_GAME step (should not count toward pass/fail metrics)
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
	RunID    uuid.UUID // Correlates the run with its log lines
}
