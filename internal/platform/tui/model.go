package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/espresso-rush/internal/config"
	"github.com/vovakirdan/espresso-rush/internal/core"
	"github.com/vovakirdan/espresso-rush/internal/ledger"
	"github.com/vovakirdan/espresso-rush/internal/roast"
	"github.com/vovakirdan/espresso-rush/internal/runner"
	"github.com/vovakirdan/espresso-rush/internal/storage"
)

// Mouse gestures are measured in terminal cells.
const (
	tapMaxCells   = 2
	swipeMinCells = 6
)

// RunHistory records finished runs.
type RunHistory interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Options configures a game session.
type Options struct {
	Runtime       core.RuntimeConfig
	Runner        config.RunnerConfig
	Clock         core.Clock     // nil for the system clock
	Ledger        *ledger.Ledger // nil keeps scores in memory
	History       RunHistory     // nil skips run history
	Roast         *roast.Service // nil always shows the missing-credential line
	Logger        *log.Logger    // nil discards
	PlayerName    string         // Prefilled in the name prompt
	ScreenshotDir string         // Defaults to ~/.espresso/screenshots
}

type view int

const (
	viewGame view = iota
	viewNameEntry
	viewScores
)

// roastMsg carries the roast for the run that requested it.
type roastMsg struct {
	Run  int
	Text string
}

// Model is the Bubble Tea model for an Espresso Rush session.
type Model struct {
	game    *runner.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	ledger  *ledger.Ledger
	history RunHistory
	roaster *roast.Service
	logger  *log.Logger

	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	swipe     *core.SwipeDetector
	input     core.InputFrame

	view       view
	nameInput  textinput.Model
	scoreboard ScoreboardModel
	width      int
	height     int

	run          int // Incremented on every start
	runID        string
	summary      runner.RunSummary
	roastText    string
	roastPending bool
	rank         int
	status       string

	playerName    string
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model. The run starts from the title screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	board := opts.Ledger
	if board == nil {
		board = ledger.New(ledger.NewMemoryStore(), opts.Clock)
	}
	roaster := opts.Roast
	if roaster == nil {
		roaster = roast.NewService(nil, roast.LangIcelandic, opts.Logger)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = ledger.MaxNameLen
	ti.Width = ledger.MaxNameLen + 1
	ti.Prompt = "› "

	keys := DefaultKeyMap()
	return Model{
		game:          runner.New(opts.Runner, opts.Clock),
		screen:        core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:        cfg,
		ledger:        board,
		history:       opts.History,
		roaster:       roaster,
		logger:        logger,
		keys:          keys,
		keyMapper:     NewKeyMapper(keys),
		help:          help.New(),
		swipe:         core.NewSwipeDetector(tapMaxCells, swipeMinCells),
		input:         core.NewInputFrame(),
		nameInput:     ti,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
		playerName:    opts.PlayerName,
		screenshotDir: opts.ScreenshotDir,
	}
}

// gameHeight leaves one row for the help line.
func gameHeight(h int) int {
	return max(h-1, 1)
}

// Init shows the title screen; ticking starts with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case roastMsg:
		if msg.Run == m.run {
			m.roastText = msg.Text
			m.roastPending = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.view {
		case viewNameEntry:
			return m.updateNameEntry(msg)
		case viewScores:
			return m.updateScores(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	phase := m.game.Phase()
	if phase != runner.PhasePlaying && key.Matches(msg, m.keys.Scores) {
		return m.openScores(0), nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	}

	switch phase {
	case runner.PhaseNotStarted:
		if action == core.ActionConfirm || action == core.ActionFire {
			return m.startRun()
		}
	case runner.PhaseOver:
		if action == core.ActionRestart || action == core.ActionConfirm {
			return m.startRun()
		}
	case runner.PhasePlaying:
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionFire:
			m.game.Apply(action)
		case core.ActionPause:
			m.input.Set(core.ActionPause)
		case core.ActionBack:
			if !m.game.State().Paused {
				m.input.Set(core.ActionPause)
			}
		}
	}

	return m, nil
}

// handleMouse feeds left-button press/release pairs to the swipe detector.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Releases carry no button.
	if m.view != viewGame || (msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease) {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.swipe.Press(float64(msg.X))
	case tea.MouseActionRelease:
		action := m.swipe.Release(float64(msg.X))
		switch m.game.Phase() {
		case runner.PhasePlaying:
			m.game.Apply(action)
		case runner.PhaseNotStarted:
			if action == core.ActionFire {
				return m.startRun()
			}
		}
	}
	return m, nil
}

// handleResize processes window resize events. The run keeps going; only
// the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if m.view == viewScores {
		next, _ := m.scoreboard.Update(msg)
		m.scoreboard = next.(ScoreboardModel)
	}
	return m, nil
}

// startRun begins a fresh run with a new seed.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.run++
	m.runID = uuid.NewString()
	m.view = viewGame
	m.roastText = ""
	m.roastPending = false
	m.rank = 0
	m.status = ""
	m.input.Clear()

	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	} else {
		// Fixed seeds still vary between restarts in one session.
		cfg.Seed += int64(m.run - 1)
	}
	m.game.Start(cfg)

	m.logger.Info("run started", "run", m.runID, "seed", cfg.Seed)
	return m, tickCmd(m.config.TickRate, m.run)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Stale tick from an earlier run, or the run already ended.
	if msg.Run != m.run || m.game.Phase() != runner.PhasePlaying {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventFireballUnlocked, core.EventPowerBurstStarted, core.EventPowerBurstEnded:
			m.logger.Debug("mode change", "run", m.runID, "event", ev.Kind, "coffees", ev.Value)
		}
	}

	if result.State.GameOver {
		return m.runOver()
	}
	return m, tickCmd(m.config.TickRate, m.run)
}

// runOver handles the end of a run: history, roast request and the
// high-score check. No further ticks are scheduled.
func (m Model) runOver() (tea.Model, tea.Cmd) {
	summary, ok := m.game.Summary()
	if !ok {
		return m, nil
	}
	m.summary = summary

	m.logger.Info("run ended",
		"run", m.runID,
		"score", summary.Score,
		"coffees", summary.CoffeeCount,
		"peak", summary.PeakMode,
		"ticks", summary.Ticks,
	)

	if m.history != nil {
		_, err := m.history.SaveRun(storage.RunRecord{
			RunID:       m.runID,
			GameID:      runner.ID,
			Score:       summary.Score,
			CoffeeCount: summary.CoffeeCount,
			Ticks:       int64(summary.Ticks),
			PeakMode:    summary.PeakMode.String(),
			Duration:    summary.EndedAt.Sub(summary.StartedAt),
		})
		if err != nil {
			m.logger.Error("cannot save run", "run", m.runID, "err", err)
		}
	}

	qualifies, err := m.ledger.RecordRun(summary)
	if err != nil {
		m.logger.Error("cannot read leaderboard", "err", err)
	}
	if qualifies {
		m.view = viewNameEntry
		m.nameInput.SetValue(ledger.NormalizeName(m.playerName))
		m.nameInput.CursorEnd()
		m.nameInput.Focus()
	}

	m.roastPending = true
	return m, roastCmd(m.roaster, m.run, summary)
}

// roastCmd asks for a roast off the UI goroutine.
func roastCmd(s *roast.Service, run int, summary runner.RunSummary) tea.Cmd {
	return func() tea.Msg {
		return roastMsg{
			Run:  run,
			Text: s.Roast(context.Background(), summary.Score, summary.CoffeeCount),
		}
	}
}

// updateNameEntry handles the high-score name prompt.
func (m Model) updateNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.nameInput.Blur()
		m.view = viewGame
		return m, nil

	case tea.KeyEnter:
		name := ledger.NormalizeName(m.nameInput.Value())
		if name == "" {
			m.status = "Enter a name to save your score"
			return m, nil
		}

		rank, err := m.ledger.Submit(name, m.summary)
		if err != nil {
			m.logger.Error("cannot save high score", "err", err)
			m.status = "Could not save score"
			return m, nil
		}
		m.logger.Info("high score saved", "run", m.runID, "name", name, "rank", rank)
		m.nameInput.Blur()
		return m.openScores(rank), nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.status = ""
	return m, cmd
}

// openScores switches to the leaderboard, selecting rank if non-zero.
func (m Model) openScores(rank int) Model {
	m.rank = rank
	m.scoreboard = NewScoreboardModel(m.ledger, m.width, m.height)
	if rank > 0 {
		m.scoreboard.Highlight(rank)
	}
	m.view = viewScores
	return m
}

// updateScores forwards keys to the leaderboard until the user leaves it.
func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
		return m, nil
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".espresso", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", runner.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewScores:
		return m.scoreboard.View()
	case viewNameEntry:
		return m.nameEntryView()
	}

	m.game.Render(m.screen)
	if m.game.Phase() == runner.PhaseOver {
		m.drawRunOver()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawRunOver adds the roast and the next-step hint under the crash box.
func (m Model) drawRunOver() {
	y := m.screen.Height()/2 + 4

	text := m.roastText
	if m.roastPending {
		text = m.roaster.Messages().Loading
	} else if text != "" {
		text = fmt.Sprintf("%q", text)
	}
	for _, line := range wrapText(text, max(m.screen.Width()-8, 10)) {
		m.screen.DrawTextCentered(y, line, core.ColorYellow)
		y++
	}

	hint := "R to run again · Tab for scores · Q to quit"
	if m.rank > 0 {
		hint = fmt.Sprintf("Saved at #%d · %s", m.rank, hint)
	}
	m.screen.DrawTextCentered(y+1, hint, core.ColorGray)
}

// nameEntryView renders the high-score prompt.
func (m Model) nameEntryView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("202"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("130")).
		Padding(1, 3)

	lines := []string{
		title.Render("NEW HIGH SCORE!"),
		"",
		fmt.Sprintf("Score %d  ·  ☕ %d", m.summary.Score, m.summary.CoffeeCount),
		"",
		m.nameInput.View(),
	}
	if m.status != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.status))
	}
	lines = append(lines, "", dim.Render("enter to save · esc to skip"))

	content := panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Phase returns the run phase, for callers driving the model directly.
func (m Model) Phase() runner.Phase {
	return m.game.Phase()
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press/release for tap and swipe
	)

	_, err := p.Run()
	return err
}
