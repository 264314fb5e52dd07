package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkaragoz/clockwise/internal/db"
	"github.com/dkaragoz/clockwise/internal/models"
	"github.com/dkaragoz/clockwise/internal/notify"
	"github.com/dkaragoz/clockwise/internal/parser"
	"github.com/dkaragoz/clockwise/internal/shift"
)

// modal identifies which confirmation dialog is open, if any
type modal int

const (
	modalNone      modal = iota
	modalOverwrite       // a log for today already exists
	modalClear           // wipe the entire history
)

// ShiftModel represents the TUI model for the shift countdown
type ShiftModel struct {
	width  int
	height int

	timer        *shift.Timer
	channel      *notify.Channel
	tickInterval time.Duration

	// Countdown state, re-derived on every tick
	remaining string
	progress  float64

	// History panel
	logs []models.WorkLog

	// Login time editing
	input         textinput.Model
	editing       bool
	validationErr string

	// Confirmation modals
	activeModal modal
	pendingLog  models.WorkLog

	statusMsg string
	quitting  bool
}

// tickMsg is sent every second to update the countdown
type tickMsg time.Time

// notifySentMsg reports a finished delivery attempt
type notifySentMsg struct{ err error }

// NewShiftModel creates a new shift countdown TUI model. tickInterval
// sets how often the countdown re-derives itself; any cadence is safe,
// extra ticks never duplicate a notification.
func NewShiftModel(timer *shift.Timer, channel *notify.Channel, tickInterval time.Duration) ShiftModel {
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.CharLimit = 5
	input.Width = 10
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := ShiftModel{
		timer:        timer,
		channel:      channel,
		tickInterval: tickInterval,
		input:        input,
	}
	m.refreshCountdown(time.Now())
	m.refreshLogs()
	return m
}

// Init initializes the shift model
func (m ShiftModel) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m ShiftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		cmds := []tea.Cmd{tickCmd(m.tickInterval)}
		if cmd := m.handleTick(time.Time(msg)); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case notifySentMsg:
		// Delivery failures degrade silently, countdown is unaffected
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick polls the timer and turns fired thresholds into delivery
// commands. Extra ticks are harmless: the notified flags inside the
// timer gate each threshold to a single fire per shift.
func (m *ShiftModel) handleTick(now time.Time) tea.Cmd {
	if !m.timer.Active() {
		return nil
	}

	res, err := m.timer.Tick(now)
	if err != nil {
		return nil
	}

	m.remaining = res.RemainingLabel
	m.progress = res.Progress

	var cmds []tea.Cmd
	if res.FireFiveMinute && m.channel.Granted() {
		cmds = append(cmds, func() tea.Msg {
			return notifySentMsg{err: m.channel.SendFiveMinute()}
		})
	}
	if res.FireComplete && m.channel.Granted() {
		cmds = append(cmds, func() tea.Msg {
			return notifySentMsg{err: m.channel.SendComplete()}
		})
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m ShiftModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal keys take priority over everything else
	if m.activeModal != modalNone {
		return m.handleModalKey(msg)
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit

	case "e":
		m.editing = true
		m.validationErr = ""
		m.input.SetValue(m.timer.Login().String())
		m.input.Focus()
		return m, textinput.Blink

	case "n":
		now := time.Now()
		m.timer.SetLoginTime(shift.TimeOfDayFrom(now), now)
		m.refreshCountdown(now)
		m.statusMsg = fmt.Sprintf("Login time set to %s", shift.FormatDisplay(now))
		return m, nil

	case "s":
		return m.handleSave(false)

	case "c":
		if len(m.logs) > 0 {
			m.activeModal = modalClear
		}
		return m, nil
	}

	return m, nil
}

func (m ShiftModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		now := time.Now()
		login, err := parser.ParseLoginInput(m.input.Value(), now)
		if err != nil {
			// Reject and keep the prior login time
			m.validationErr = "Invalid time, use HH:MM (e.g. 09:00)"
			return m, nil
		}
		m.timer.SetLoginTime(login, now)
		m.refreshCountdown(now)
		m.editing = false
		m.validationErr = ""
		m.statusMsg = ""
		m.input.Blur()
		return m, nil

	case "esc":
		m.editing = false
		m.validationErr = ""
		m.input.Blur()
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShiftModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		switch m.activeModal {
		case modalOverwrite:
			if _, err := db.SaveLog(m.pendingLog, true); err != nil {
				m.statusMsg = fmt.Sprintf("Error: %v", err)
			} else {
				m.statusMsg = "Replaced today's log"
			}
			m.refreshLogs()
		case modalClear:
			if err := db.ClearLogs(); err != nil {
				m.statusMsg = fmt.Sprintf("Error: %v", err)
			} else {
				m.statusMsg = "History cleared"
			}
			m.refreshLogs()
		}
		m.activeModal = modalNone
		return m, nil

	case "n", "N", "esc":
		m.activeModal = modalNone
		m.statusMsg = ""
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ShiftModel) handleSave(overwrite bool) (tea.Model, tea.Cmd) {
	now := time.Now()

	entry, err := m.timer.SaveShift(now)
	if err != nil {
		m.statusMsg = "Set a login time before saving"
		return m, nil
	}

	if _, err := db.SaveLog(entry, overwrite); err != nil {
		if errors.Is(err, db.ErrDuplicateDate) {
			m.pendingLog = entry
			m.activeModal = modalOverwrite
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.statusMsg = "Logged today's shift"
	m.refreshLogs()
	return m, nil
}

// refreshCountdown re-derives the display without going through Tick,
// so it never consumes a pending notification fire.
func (m *ShiftModel) refreshCountdown(now time.Time) {
	if !m.timer.Active() {
		m.remaining = ""
		m.progress = 0
		return
	}
	m.remaining = shift.RemainingLabel(now, m.timer.Logout())
	m.progress = shift.ProgressPercent(m.timer.Login(), m.timer.Logout(), now)
}

func (m *ShiftModel) refreshLogs() {
	logs, err := db.GetLogs()
	if err != nil {
		return
	}
	m.logs = logs
}

// View renders the shift TUI
func (m ShiftModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.activeModal != modalNone {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderModal(m.width, contentHeight),
			helpBar,
		)
	}

	// Narrow view: countdown only, full width
	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderCountdownPanel(m.width, contentHeight),
			helpBar,
		)
	}

	// Wide view: countdown left, history right
	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCountdownPanel(leftWidth, contentHeight),
		"  ",
		m.renderHistoryPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderCountdownPanel renders the main countdown card
func (m ShiftModel) renderCountdownPanel(width, height int) string {
	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render("⏰  WORK SCHEDULE  ⏰"))

	subStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, subStyle.Render(
		fmt.Sprintf("%d hours %d minutes standard shift", shift.WorkHours, shift.WorkMinutes)))

	// Login time line, or the edit input
	if m.editing {
		editLabel := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(width).
			Render("Start time (24h):")
		inputLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(m.input.View())
		components = append(components, editLabel+"\n"+inputLine)

		if m.validationErr != "" {
			errStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError)).
				Align(lipgloss.Center).
				Width(width)
			components = append(components, errStyle.Render(m.validationErr))
		}
	} else {
		loginStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(width)
		login := m.timer.Login().Anchor(time.Now())
		components = append(components, loginStyle.Render(
			fmt.Sprintf("Clocked in at %s", shift.FormatDisplay(login))))
	}

	// Clock-out card
	logoutLabel := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width).
		Render("CLOCK OUT AT")
	logoutStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, logoutLabel+"\n"+logoutStyle.Render(m.timer.LogoutDisplay()))

	// Progress bar with remaining label under it
	components = append(components, m.renderProgress(width))

	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, statusStyle.Render(m.statusMsg))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderProgress renders the shift progress bar like ████████░░░░ 62%
func (m ShiftModel) renderProgress(width int) string {
	barWidth := min(width-12, 40)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(m.progress / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	barColor := ColorAccentMain
	labelColor := ColorAccentBright
	if m.progress >= 100 {
		barColor = ColorSuccess
		labelColor = ColorSuccess
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(barColor)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("░", barWidth-filled))

	barLine := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%s %3.0f%%", bar, m.progress))

	remainingLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(labelColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(m.remaining)

	return barLine + "\n" + remainingLine
}

// renderHistoryPanel renders the recent activity list
func (m ShiftModel) renderHistoryPanel(width, height int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 4)
	b.WriteString(titleStyle.Render("📅 Recent Activity"))
	b.WriteString("\n\n")

	if len(m.logs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width - 4)
		b.WriteString(emptyStyle.Render("No records yet.\nStart tracking your time!"))
	} else {
		dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		loginStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		arrowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		logoutStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

		maxRows := max(height-6, 1)
		for i, log := range m.logs {
			if i >= maxRows {
				more := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
					Render(fmt.Sprintf("… %d more", len(m.logs)-maxRows))
				b.WriteString(more)
				break
			}
			b.WriteString(dateStyle.Render(log.DisplayDate()))
			b.WriteString("  ")
			b.WriteString(loginStyle.Render(log.LoginDisplay))
			b.WriteString(arrowStyle.Render(" → "))
			b.WriteString(logoutStyle.Render(log.LogoutDisplay))
			b.WriteString("\n")
		}
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return panelStyle.Render(b.String())
}

// renderModal renders a centered y/n confirmation dialog
func (m ShiftModel) renderModal(width, height int) string {
	var question string
	switch m.activeModal {
	case modalOverwrite:
		question = "You already have a log for today.\nOverwrite it?"
	case modalClear:
		question = "Clear your entire history?"
	}

	questionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center)

	choiceStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 4).
		Render(questionStyle.Render(question) + "\n\n" + choiceStyle.Render("y yes · n no"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// renderHelpBar renders the help bar at the bottom
func (m ShiftModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "e edit start time · n set to now · s log this day · c clear history · esc/q quit"
	if m.editing {
		helpText = "enter confirm · esc cancel"
	} else if m.activeModal != modalNone {
		helpText = "y confirm · n cancel"
	}

	return helpStyle.Render(helpText)
}
