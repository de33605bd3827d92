package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/tanelorn/internal/game"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/delve"
	"github.com/jwebster45206/tanelorn/pkg/state"
	"github.com/muesli/reflow/wordwrap"
)

const BoardName = "TANELORN BBS"

type screen int

const (
	screenMenu screen = iota
	screenPick
	screenCombat
	screenDelve
)

// pickItem is one row of a selection list. run performs the choice.
type pickItem struct {
	label    string
	disabled bool
	run      func(m *BBS)
}

// BBS is the BubbleTea model for the board.
type BBS struct {
	game       *game.Game
	logView    viewport.Model
	statusView viewport.Model
	lines      []string
	ready      bool
	width      int
	height     int

	screen    screen
	pickTitle string
	picks     []pickItem
	cursor    int

	showQuitModal bool
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	hpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")) // red

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

func NewBBS(g *game.Game) BBS {
	logVp := viewport.New(60, 20)
	logVp.MouseWheelEnabled = true

	m := BBS{
		game:       g,
		logView:    logVp,
		statusView: viewport.New(30, 20),
	}
	m.say(titleStyle.Render("*** Welcome to " + BoardName + " ***"))
	m.say(fmt.Sprintf("Greetings, %s. You have %d turns today.", g.Player().Name, g.Player().TurnsRemaining))
	return m
}

func (m BBS) Init() tea.Cmd {
	return nil
}

// say appends lines to the log.
func (m *BBS) say(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.refresh()
}

func (m *BBS) fail(err error) {
	m.say(errorStyle.Render(userError(err)))
}

func userError(err error) string {
	switch {
	case errors.Is(err, game.ErrNoTurns):
		return "You are out of turns for today."
	case errors.Is(err, game.ErrLocked):
		return "You are not experienced enough for that."
	case errors.Is(err, game.ErrTooWounded):
		return "You are too wounded. Visit the healer first."
	case errors.Is(err, game.ErrBusy):
		return "Finish what you started first."
	}
	return "Error: " + err.Error()
}

func (m *BBS) refresh() {
	width := m.logView.Width - 2
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(wordwrap.String(l, width))
		b.WriteString("\n")
	}
	m.logView.SetContent(b.String())
	m.logView.GotoBottom()
	m.statusView.SetContent(m.renderStatus())
}

func (m BBS) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		statusWidth := 34
		m.logView.Width = max(20, m.width-statusWidth-6)
		m.logView.Height = max(5, m.height-4)
		m.statusView.Width = statusWidth - 4
		m.statusView.Height = max(5, m.height-4)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			m.updateMenu(msg)
		case screenPick:
			m.updatePick(msg)
		case screenCombat:
			m.updateCombat(msg.String())
		case screenDelve:
			m.updateDelve(msg.String())
		}
		return m, nil
	}

	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m *BBS) updateMenu(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, menuKeys.Fight):
		enc, err := m.game.Fight()
		if err != nil {
			m.fail(err)
			return
		}
		m.startCombat(enc)
	case key.Matches(msg, menuKeys.Bounties):
		m.openBounties()
	case key.Matches(msg, menuKeys.Delve):
		m.openZones("Choose a zone to delve", func(m *BBS, id string) { m.startDelve(id) })
	case key.Matches(msg, menuKeys.Scout):
		m.openZones("Choose a zone to scout", func(m *BBS, id string) { m.scout(id) })
	case key.Matches(msg, menuKeys.Raid):
		m.openCastles()
	case key.Matches(msg, menuKeys.Market):
		m.openMarket()
	case key.Matches(msg, menuKeys.Heal):
		m.heal()
	case key.Matches(msg, menuKeys.Quit):
		m.showQuitModal = true
	}
	m.refresh()
}

func (m *BBS) updatePick(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, pickKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, pickKeys.Down):
		if m.cursor < len(m.picks)-1 {
			m.cursor++
		}
	case key.Matches(msg, pickKeys.Back):
		m.screen = screenMenu
	case key.Matches(msg, pickKeys.Select):
		if len(m.picks) == 0 {
			m.screen = screenMenu
			break
		}
		it := m.picks[m.cursor]
		if it.disabled {
			break
		}
		m.screen = screenMenu
		it.run(m)
	}
	m.refresh()
}

func (m *BBS) openPick(title string, items []pickItem) {
	m.pickTitle = title
	m.picks = items
	m.cursor = 0
	m.screen = screenPick
}

func (m *BBS) openBounties() {
	p := m.game.Player()
	var items []pickItem
	for i, b := range m.game.Bounties() {
		items = append(items, pickItem{
			label:    fmt.Sprintf("%s  (+%d XP, +%dg, Lv %d)", b.Description, b.BonusXP, b.BonusGold, b.RequiredLevel),
			disabled: p.Level < b.RequiredLevel,
			run: func(m *BBS) {
				enc, err := m.game.FightBounty(i)
				if err != nil {
					m.fail(err)
					return
				}
				m.startCombat(enc)
			},
		})
	}
	items = append(items, pickItem{
		label: "Ask for new bounties",
		run: func(m *BBS) {
			m.game.RefreshBounties()
			m.say("The board keeper pins up fresh notices.")
			m.openBounties()
		},
	})
	m.openPick("Bounty Board", items)
}

func (m *BBS) openZones(title string, choose func(m *BBS, id string)) {
	p := m.game.Player()
	var items []pickItem
	for _, z := range m.game.Catalog().Zones() {
		label := fmt.Sprintf("%s  [%s, Lv %d-%d]", z.Name, titleCaser.String(string(z.Difficulty)), z.MinLevel, z.MaxLevel)
		if p.HasClearedBoss(z.ID) {
			label += "  (cleared)"
		}
		items = append(items, pickItem{
			label:    label,
			disabled: p.Level < z.MinLevel,
			run:      func(m *BBS) { choose(m, z.ID) },
		})
	}
	m.openPick(title, items)
}

func (m *BBS) openCastles() {
	p := m.game.Player()
	var items []pickItem
	for _, c := range m.game.Catalog().Castles() {
		items = append(items, pickItem{
			label: fmt.Sprintf("%s, held by %s  [Lv %d, %d turns, x%.1f XP, x%.1f gold]",
				c.Name, c.OwnerName, c.RequiredLevel, c.TurnCost, c.XPMultiplier, c.GoldMultiplier),
			disabled: p.Level < c.RequiredLevel,
			run: func(m *BBS) {
				enc, err := m.game.Raid(c.ID)
				if err != nil {
					m.fail(err)
					return
				}
				m.say(c.Art...)
				m.startCombat(enc)
			},
		})
	}
	m.openPick("Castles", items)
}

func (m *BBS) openMarket() {
	p := m.game.Player()
	c := m.game.Catalog()
	var items []pickItem
	for _, w := range c.AvailableWeapons(p) {
		items = append(items, pickItem{
			label:    fmt.Sprintf("Weapon: %s (+%d Strength) %dg", w.Name, w.StrengthBonus, w.Cost),
			disabled: p.Gold < w.Cost,
			run:      func(m *BBS) { m.bought(w.Name)(m.game.BuyWeapon(w.ID)) },
		})
	}
	for _, a := range c.AvailableArmors(p) {
		items = append(items, pickItem{
			label:    fmt.Sprintf("Armor: %s (+%d Defense) %dg", a.Name, a.DefenseBonus, a.Cost),
			disabled: p.Gold < a.Cost,
			run:      func(m *BBS) { m.bought(a.Name)(m.game.BuyArmor(a.ID)) },
		})
	}
	for _, d := range c.AvailableDefenses(p) {
		items = append(items, pickItem{
			label:    fmt.Sprintf("Defense: %s - %s %dg", d.Name, d.Description, d.Cost),
			disabled: p.Gold < d.Cost,
			run:      func(m *BBS) { m.bought(d.Name)(m.game.BuyDefense(d.ID)) },
		})
	}
	m.openPick("Market", items)
}

func (m *BBS) bought(name string) func(bool, error) {
	return func(ok bool, err error) {
		switch {
		case err != nil:
			m.fail(err)
		case ok:
			m.say(fmt.Sprintf("You purchase the %s.", name))
		default:
			m.say("The merchant shakes their head.")
		}
	}
}

func (m *BBS) heal() {
	cost := state.HealingCost(m.game.Player())
	ok, err := m.game.Heal()
	switch {
	case err != nil:
		m.fail(err)
	case ok:
		m.say(fmt.Sprintf("The healer restores you to full health for %d gold.", cost))
	case cost == 0:
		m.say("You are already at full health.")
	default:
		m.say(fmt.Sprintf("Healing costs %d gold. Not enough gold.", cost))
	}
}

func (m *BBS) startCombat(enc *game.Encounter) {
	m.say("")
	m.say(enc.Session.Enemy.Art...)
	m.say(enc.Session.Log...)
	m.screen = screenCombat
}

func (m *BBS) updateCombat(pressed string) {
	var action combat.Action
	switch strings.ToLower(pressed) {
	case "a":
		action = combat.Attack
	case "r":
		action = combat.Run
	default:
		return
	}

	res, err := m.game.Combat(action)
	if err != nil {
		m.fail(err)
		m.screen = screenMenu
		return
	}
	m.say(res.Messages...)
	if res.Outcome.Terminal() {
		p := m.game.Player()
		if res.Outcome == combat.Defeat {
			m.say(fmt.Sprintf("You wake up in the village with %d HP.", p.HP))
		}
		m.say(fmt.Sprintf("Turns remaining: %d", p.TurnsRemaining))
		m.screen = screenMenu
	}
	m.refresh()
}

func (m *BBS) startDelve(zoneID string) {
	s, err := m.game.StartDelve(zoneID)
	if err != nil {
		m.fail(err)
		return
	}
	m.say("", titleStyle.Render(fmt.Sprintf("You descend into the %s...", s.Zone.Name)))
	m.say(s.Zone.Art...)
	m.showDelve(s)
	m.screen = screenDelve
}

func (m *BBS) updateDelve(pressed string) {
	cur, ok := m.game.DelveState()
	if !ok {
		m.screen = screenMenu
		return
	}
	in, ok := delveInput(cur, pressed)
	if !ok {
		return
	}
	s, err := m.game.Delve(in)
	if err != nil {
		if errors.Is(err, delve.ErrInvalidInput) {
			return
		}
		m.fail(err)
		return
	}
	m.say(s.Messages...)
	if s.Done() {
		m.say(delveSummary(*s.Result)...)
		m.screen = screenMenu
		return
	}
	m.showDelve(s)
}

// showDelve announces a freshly generated step.
func (m *BBS) showDelve(s delve.State) {
	if s.Phase == delve.PhaseEvent {
		m.say(fmt.Sprintf("-- Step %d of %d --", s.Step, delve.TotalSteps))
		m.say(describeEvent(*s.Event)...)
	}
	m.refresh()
}

func (m *BBS) scout(zoneID string) {
	rep, err := m.game.Scout(zoneID)
	if err != nil {
		m.fail(err)
		return
	}
	if rep.Encounter != nil {
		m.startCombat(rep.Encounter)
		return
	}
	m.say(rep.Messages...)
}

func (m BBS) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.showQuitModal = false
			}
		}
	}
	return m, nil
}

func (m BBS) renderStatus() string {
	p := m.game.Player()
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("Level %d  XP %d/%d\n", p.Level, p.XP, p.XPToNext))
	b.WriteString(hpStyle.Render(hpBar(p.HP, p.MaxHP, 20)) + "\n")
	b.WriteString(fmt.Sprintf("HP %d/%d\n", p.HP, p.MaxHP))
	b.WriteString(goldStyle.Render(fmt.Sprintf("Gold %d", p.Gold)) + "\n")
	b.WriteString(fmt.Sprintf("Turns %d\n\n", p.TurnsRemaining))

	eff := p.EffectiveStats()
	for _, st := range actor.AllStats {
		b.WriteString(fmt.Sprintf("%-9s %3d\n", titleCaser.String(string(st)), eff.Get(st)))
	}
	b.WriteString("\n")
	weapon, armor, relic := "none", "none", "none"
	if p.Weapon != nil {
		weapon = p.Weapon.Name
	}
	if p.Armor != nil {
		armor = p.Armor.Name
	}
	if p.Relic != nil {
		relic = p.Relic.Name
	}
	b.WriteString("Weapon: " + weapon + "\n")
	b.WriteString("Armor:  " + armor + "\n")
	b.WriteString("Relic:  " + relic + "\n")

	if enc, ok := m.game.Encounter(); ok {
		e := enc.Session.Enemy
		b.WriteString("\n" + titleStyle.Render(e.Name) + "\n")
		b.WriteString(hpStyle.Render(hpBar(enc.Session.EnemyHP(), e.MaxHP, 20)) + "\n")
		b.WriteString(fmt.Sprintf("HP %d/%d  You %d\n", enc.Session.EnemyHP(), e.MaxHP, enc.Session.PlayerHP()))
		if mods := modifierText(enc.Session.Modifiers()); mods != "" {
			b.WriteString("Gear: " + mods + "\n")
		}
	}

	if s, ok := m.game.DelveState(); ok {
		b.WriteString("\n" + titleStyle.Render(s.Zone.Name) + "\n")
		b.WriteString(fmt.Sprintf("Step %d/%d  HP %d/%d\n", s.Step, delve.TotalSteps, s.PlayerHP, s.MaxHP))
		b.WriteString(fmt.Sprintf("Spoils %dg %dxp\n", s.Gold, s.XP))
		if s.Phase == delve.PhaseCombat {
			b.WriteString(fmt.Sprintf("%s HP %d\n", s.Event.Enemy.Name, s.EnemyHP))
		}
		for _, buff := range s.Buffs {
			b.WriteString(fmt.Sprintf("+%d %s (%s)\n", buff.Amount, titleCaser.String(string(buff.Stat)), buff.Name))
		}
		for _, d := range s.DOTs {
			b.WriteString(fmt.Sprintf("%s %d/step, %d left\n", titleCaser.String(string(d.Type)), d.DamagePerStep, d.RemainingSteps))
		}
	}
	return b.String()
}

func (m BBS) prompt() string {
	switch m.screen {
	case screenCombat:
		return "[A]ttack  [R]un"
	case screenDelve:
		if s, ok := m.game.DelveState(); ok {
			return delvePrompt(s)
		}
	case screenPick:
		return "Use ↑/↓ to navigate, Enter to select, Esc to go back"
	}
	return menuHelp()
}

func (m BBS) renderPick() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.pickTitle) + "\n\n")
	if len(m.picks) == 0 {
		b.WriteString("Nothing on offer.\n")
	}
	for i, it := range m.picks {
		line := "  " + it.label
		switch {
		case i == m.cursor:
			line = selectedStyle.Render("▶ " + it.label)
		case it.disabled:
			line = disabledStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m BBS) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Log off?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress is not saved when you hang up.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m BBS) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Dialing in..."
	}

	body := m.logView.View()
	if m.screen == screenPick {
		body = m.renderPick()
	}

	left := logPanelStyle.Width(m.logView.Width + 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			body,
			"",
			promptStyle.Render(m.prompt()),
		),
	)
	right := statusPanelStyle.Render(m.statusView.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
