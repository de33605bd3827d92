package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/tanelorn/internal/game"
	"github.com/jwebster45206/tanelorn/internal/logger"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/delve"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// maxAutoSteps bounds auto-fight and auto-delve loops.
const maxAutoSteps = 500

// Runner plays scripted sessions against the game engine
type Runner struct {
	Catalog           *content.Catalog
	Logger            func(format string, args ...any)
	GameLogger        *slog.Logger
	ErrorHandlingMode ErrorHandlingMode
	SeedOverride      int64 // If non-zero, overrides the seed for all test cases
}

// NewRunner creates a new test runner over the given content
func NewRunner(c *content.Catalog) *Runner {
	return &Runner{
		Catalog:           c,
		Logger:            func(string, ...any) {},
		GameLogger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// session is one game plus what the last command left behind for the checks.
type session struct {
	game     *game.Game
	outcome  string
	traded   *bool
	messages []string
}

// RunSuite executes a complete test suite
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
		RunID:   uuid.New(),
	}

	s := r.newSession(suite, result.RunID)

	for i, step := range suite.Steps {
		if err := ctx.Err(); err != nil {
			result.Error = fmt.Errorf("suite interrupted before step %d: %w", i, err)
			break
		}

		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)
		stepResult := r.runStep(&s, suite, result.RunID, step)
		stepResult.TestName = suite.Name
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

func (r *Runner) newSession(suite TestSuite, runID uuid.UUID) session {
	seed := suite.Seed
	if r.SeedOverride != 0 {
		seed = r.SeedOverride
	}
	var opts []game.Option
	if suite.SeedPlayer != nil {
		opts = append(opts, game.WithPlayer(*suite.SeedPlayer))
	}
	log := logger.WithSessionID(r.GameLogger, runID).With("suite", suite.Name)
	return session{game: game.New(r.Catalog, dice.New(seed), log, "Tester", opts...)}
}

func (r *Runner) runStep(s *session, suite TestSuite, runID uuid.UUID, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name}
	if result.StepName == "" {
		result.StepName = step.Command
	}

	s.messages = nil
	s.traded = nil

	var err error
	if step.Command == ResetGameCommand {
		*s = r.newSession(suite, runID)
		result.IsReset = true
	} else {
		err = s.execute(step.Command)
	}
	result.Messages = s.messages
	result.Duration = time.Since(start)

	if err := checkExpectations(step.Expectations, s, err); err != nil {
		result.Error = fmt.Errorf("expectation failed: %w", err)
		return result
	}
	result.Success = true
	return result
}

// execute runs one command against the game.
func (s *session) execute(command string) error {
	verb, arg, _ := strings.Cut(strings.TrimSpace(command), " ")
	g := s.game

	switch verb {
	case "fight":
		return s.started(g.Fight())
	case "bounty":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad bounty index %q: %w", arg, err)
		}
		return s.started(g.FightBounty(i))
	case "raid":
		return s.started(g.Raid(arg))
	case "attack":
		return s.combat(combat.Attack)
	case "run":
		return s.combat(combat.Run)
	case "auto-fight":
		for i := 0; i < maxAutoSteps; i++ {
			if _, ok := g.Encounter(); !ok {
				return nil
			}
			if err := s.combat(combat.Attack); err != nil {
				return err
			}
		}
		return errors.New("fight did not finish")

	case "delve":
		st, err := g.StartDelve(arg)
		if err != nil {
			return err
		}
		s.messages = append(s.messages, st.Messages...)
		return nil
	case "proceed":
		return s.delve(delve.Proceed)
	case "continue":
		return s.delve(delve.Continue)
	case "accept":
		return s.delve(delve.AcceptHealer)
	case "decline":
		return s.delve(delve.DeclineHealer)
	case "deeper":
		return s.delve(delve.Deeper)
	case "retreat":
		return s.delve(delve.Retreat)
	case "buy":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad item index %q: %w", arg, err)
		}
		return s.delve(delve.Buy(i))
	case "auto-delve":
		return s.autoDelve()

	case "weapon":
		return s.trade(g.BuyWeapon(arg))
	case "armor":
		return s.trade(g.BuyArmor(arg))
	case "defense":
		return s.trade(g.BuyDefense(arg))
	case "heal":
		return s.trade(g.Heal())
	case "scout":
		rep, err := g.Scout(arg)
		if err != nil {
			return err
		}
		s.messages = append(s.messages, rep.Messages...)
		return nil
	case "refresh-bounties":
		g.RefreshBounties()
		return nil
	}
	return fmt.Errorf("unknown command %q", command)
}

func (s *session) started(enc *game.Encounter, err error) error {
	if err != nil {
		return err
	}
	s.outcome = ""
	s.messages = append(s.messages, fmt.Sprintf("%s attacks!", enc.Session.Enemy.Name))
	return nil
}

func (s *session) combat(a combat.Action) error {
	res, err := s.game.Combat(a)
	if err != nil {
		return err
	}
	s.messages = append(s.messages, res.Messages...)
	if res.Outcome.Terminal() {
		s.outcome = string(res.Outcome)
	}
	return nil
}

func (s *session) delve(in delve.Input) error {
	st, err := s.game.Delve(in)
	if err != nil {
		return err
	}
	s.messages = append(s.messages, st.Messages...)
	if st.Done() {
		s.outcome = string(st.Result.Outcome)
	}
	return nil
}

// autoDelve plays the running delve to the end, always pressing deeper,
// attacking every enemy and accepting every healer.
func (s *session) autoDelve() error {
	for i := 0; i < maxAutoSteps; i++ {
		st, ok := s.game.DelveState()
		if !ok {
			return nil
		}
		in := delve.Continue
		switch st.Phase {
		case delve.PhaseEvent:
			in = delve.Proceed
		case delve.PhaseCombat:
			in = delve.Attack
		case delve.PhaseChoice:
			in = delve.Deeper
		case delve.PhaseEventResult:
			if st.Event.Type == delve.EventHealer && !st.HealerDecided {
				in = delve.AcceptHealer
			}
		}
		if err := s.delve(in); err != nil {
			return err
		}
	}
	return errors.New("delve did not finish")
}

func (s *session) trade(ok bool, err error) error {
	if err != nil {
		return err
	}
	s.traded = &ok
	return nil
}

// checkExpectations validates the test expectations against the game after a step
func checkExpectations(exp Expectations, s *session, stepErr error) error {
	if exp.Error != "" {
		if stepErr == nil {
			return fmt.Errorf("expected error containing '%s', got none", exp.Error)
		}
		if !strings.Contains(stepErr.Error(), exp.Error) {
			return fmt.Errorf("expected error containing '%s', got '%v'", exp.Error, stepErr)
		}
	} else if stepErr != nil {
		return fmt.Errorf("unexpected error: %w", stepErr)
	}

	p := s.game.Player()

	if err := checkInt("level", exp.Level, p.Level); err != nil {
		return err
	}
	if err := checkMin("level", exp.MinLevel, p.Level); err != nil {
		return err
	}
	if err := checkInt("hp", exp.HP, p.HP); err != nil {
		return err
	}
	if err := checkMin("hp", exp.MinHP, p.HP); err != nil {
		return err
	}
	if err := checkInt("gold", exp.Gold, p.Gold); err != nil {
		return err
	}
	if err := checkMin("gold", exp.MinGold, p.Gold); err != nil {
		return err
	}
	if err := checkInt("turns_remaining", exp.TurnsRemaining, p.TurnsRemaining); err != nil {
		return err
	}
	if err := checkInt("bounties", exp.Bounties, len(s.game.Bounties())); err != nil {
		return err
	}

	if exp.Weapon != nil {
		if got := weaponID(p); got != *exp.Weapon {
			return fmt.Errorf("expected weapon %q, got %q", *exp.Weapon, got)
		}
	}
	if exp.Armor != nil {
		got := ""
		if p.Armor != nil {
			got = p.Armor.ID
		}
		if got != *exp.Armor {
			return fmt.Errorf("expected armor %q, got %q", *exp.Armor, got)
		}
	}
	if exp.Relic != nil {
		got := ""
		if p.Relic != nil {
			got = p.Relic.ID
		}
		if got != *exp.Relic {
			return fmt.Errorf("expected relic %q, got %q", *exp.Relic, got)
		}
	}

	if len(exp.Defenses) > 0 {
		var owned []string
		for _, d := range p.CastleDefenses {
			owned = append(owned, d.ID)
		}
		if err := sameSet("defenses", exp.Defenses, owned); err != nil {
			return err
		}
	}
	if len(exp.ClearedBosses) > 0 {
		if err := sameSet("cleared_bosses", exp.ClearedBosses, p.ClearedBosses); err != nil {
			return err
		}
	}

	if exp.Busy != nil && s.game.Busy() != *exp.Busy {
		return fmt.Errorf("expected busy to be %t, got %t", *exp.Busy, s.game.Busy())
	}
	if exp.Phase != nil {
		st, ok := s.game.DelveState()
		if !ok {
			return fmt.Errorf("expected delve phase %s, but no delve is running", *exp.Phase)
		}
		if string(st.Phase) != *exp.Phase {
			return fmt.Errorf("expected delve phase %s, got %s", *exp.Phase, st.Phase)
		}
	}
	if exp.Outcome != nil && s.outcome != *exp.Outcome {
		return fmt.Errorf("expected outcome %q, got %q", *exp.Outcome, s.outcome)
	}
	if exp.Traded != nil {
		if s.traded == nil {
			return errors.New("expected a market command")
		}
		if *s.traded != *exp.Traded {
			return fmt.Errorf("expected traded to be %t, got %t", *exp.Traded, *s.traded)
		}
	}

	text := strings.ToLower(strings.Join(s.messages, "\n"))
	for _, want := range exp.MessagesContain {
		if !strings.Contains(text, strings.ToLower(want)) {
			return fmt.Errorf("expected messages to contain '%s', got %q", want, s.messages)
		}
	}
	if exp.MessagesNotMatch != "" {
		re, err := regexp.Compile(exp.MessagesNotMatch)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if re.MatchString(text) {
			return fmt.Errorf("messages matched forbidden pattern: %s", exp.MessagesNotMatch)
		}
	}

	return nil
}

func checkInt(name string, want *int, got int) error {
	if want != nil && got != *want {
		return fmt.Errorf("expected %s to be %d, got %d", name, *want, got)
	}
	return nil
}

func checkMin(name string, want *int, got int) error {
	if want != nil && got < *want {
		return fmt.Errorf("expected %s >= %d, got %d", name, *want, got)
	}
	return nil
}

func sameSet(name string, want, got []string) error {
	for _, w := range want {
		if !slices.Contains(got, w) {
			return fmt.Errorf("expected %s to contain '%s', got %v", name, w, got)
		}
	}
	for _, g := range got {
		if !slices.Contains(want, g) {
			return fmt.Errorf("%s contains unexpected '%s', expected %v", name, g, want)
		}
	}
	return nil
}

func weaponID(p actor.Player) string {
	if p.Weapon == nil {
		return ""
	}
	return p.Weapon.ID
}
