// Package dashboard is the live terminal dashboard: the landing view kept
// current by the deadline watch tick and by changes to the backing store.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/derive"
	"tableflip.dev/studyhub/pkg/entity"
	"tableflip.dev/studyhub/pkg/glyph"
	"tableflip.dev/studyhub/pkg/store"
	"tableflip.dev/studyhub/pkg/tui/theme"
	"tableflip.dev/studyhub/pkg/watch"
)

// recentAlerts is how many alerts the footer keeps.
const recentAlerts = 4

// Options configure a Model. Service is required.
type Options struct {
	Context context.Context
	Service *app.Service
	// Watch, when set, is ticked every Interval.
	Watch    *watch.Watch
	Interval time.Duration
	// Changes, when set, triggers a store reload for every event.
	Changes <-chan store.Event
	// Dark reports the terminal background for an unset theme.
	Dark func() bool
}

type (
	tickMsg    time.Time
	refreshMsg struct {
		view  derive.Dashboard
		theme string
		err   error
	}
	tickedMsg struct {
		res watch.Result
		err error
	}
	changedMsg  store.Event
	changesGone struct{}
	themeErrMsg struct{ err error }
)

type Model struct {
	ctx      context.Context
	service  *app.Service
	watch    *watch.Watch
	interval time.Duration
	changes  <-chan store.Event
	dark     func() bool

	theme  theme.Theme
	bar    progress.Model
	view   derive.Dashboard
	loaded bool
	alerts []watch.Alert
	err    error
	width  int
}

func New(o Options) Model {
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	interval := o.Interval
	if interval <= 0 {
		interval = watch.DefaultInterval
	}
	t := theme.For("", o.Dark)
	return Model{
		ctx:      ctx,
		service:  o.Service,
		watch:    o.Watch,
		interval: interval,
		changes:  o.Changes,
		dark:     o.Dark,
		theme:    t,
		bar:      newBar(t, 0, 40),
		width:    80,
	}
}

func newBar(t theme.Theme, percent, width int) progress.Model {
	bar := progress.New(progress.WithSolidFill(t.ProgressColor(percent)), progress.WithoutPercentage())
	bar.Width = width
	return bar
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refresh, m.tickNow}
	if m.changes != nil {
		cmds = append(cmds, m.waitChange)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refresh
		case "t":
			return m, m.toggleTheme
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	case refreshMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.view = msg.view
		m.loaded = true
		m.theme = theme.For(msg.theme, m.dark)
		m.bar = newBar(m.theme, m.view.Stats.Progress, m.bar.Width)
		return m, tea.SetWindowTitle(watch.Title(m.view.Stats.Urgent))
	case tickMsg:
		return m, m.tickNow
	case tickedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		if len(msg.res.Alerts) > 0 {
			m.alerts = append(append([]watch.Alert(nil), msg.res.Alerts...), m.alerts...)
			if len(m.alerts) > recentAlerts {
				m.alerts = m.alerts[:recentAlerts]
			}
		}
		return m, tea.Batch(m.refresh, m.scheduleTick())
	case changedMsg:
		m.service.Store.Reload(m.ctx)
		return m, tea.Batch(m.refresh, m.waitChange)
	case changesGone:
		m.changes = nil
		return m, nil
	case themeErrMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func barWidth(w int) int {
	w -= 12
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) refresh() tea.Msg {
	view, err := m.service.Dashboard(m.ctx)
	if err != nil {
		return refreshMsg{err: err}
	}
	t, _ := m.service.Theme(m.ctx)
	return refreshMsg{view: view, theme: t}
}

func (m Model) tickNow() tea.Msg {
	if m.watch == nil {
		return tickedMsg{}
	}
	res, err := m.watch.Tick(m.ctx)
	return tickedMsg{res: res, err: err}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) waitChange() tea.Msg {
	ev, ok := <-m.changes
	if !ok {
		return changesGone{}
	}
	return changedMsg(ev)
}

func (m Model) toggleTheme() tea.Msg {
	if _, err := m.service.SetTheme(m.ctx, "toggle"); err != nil {
		return themeErrMsg{err: err}
	}
	return m.refresh()
}

func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return m.theme.Footer.Error.Render(m.err.Error()) + "\n"
		}
		return m.theme.Panel.Empty.Render("loading…") + "\n"
	}
	t := m.theme
	d := m.view

	header := t.Header.Greeting.Render(d.Greeting+"!") + "  " + t.Header.Date.Render(d.Date.Format("Monday, January 2"))
	if d.Stats.Urgent > 0 {
		header += "  " + t.Header.Badge.Render(fmt.Sprintf("%d urgent", d.Stats.Urgent))
	}

	stats := t.Panel.Body.Render(fmt.Sprintf("%d pending · %d completed · %d overdue",
		d.Stats.Pending, d.Stats.Completed, d.Stats.Overdue))
	bar := m.bar.ViewAs(float64(d.Stats.Progress)/100) + fmt.Sprintf(" %d%%", d.Stats.Progress)

	panels := []string{
		header,
		"",
		stats,
		bar,
		m.panel("Due today", m.taskLines(d.TodayTasks)),
		m.panel("Overdue", m.taskLines(d.OverdueTasks)),
		m.panel("Registrations closing", m.eventLines(d.UpcomingEvents)),
	}
	if len(d.TodayNotes) > 0 {
		panels = append(panels, m.panel("Today's notes", m.noteLines(d.TodayNotes)))
	}
	panels = append(panels, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, panels...) + "\n"
}

func (m Model) panel(title string, lines []string) string {
	t := m.theme.Panel
	body := t.Empty.Render("nothing here")
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return t.Frame.Width(width).Render(t.Title.Render(title) + "\n" + body)
}

func (m Model) taskLines(tasks []entity.Task) []string {
	t := m.theme.Task
	engine := m.service.Engine()
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		style := m.theme.Panel.Body
		mark := glyph.ForStatus(task.Status).Symbol
		switch {
		case engine.Dates.IsPastDay(task.DueDate.Time):
			style = t.Overdue
			mark = glyph.Overdue.Symbol
		case task.Priority == entity.PriorityHigh:
			style = t.High
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %s %s", mark, glyph.ForPriority(task.Priority).Symbol, task.Title))+
			"  "+t.Muted.Render(task.DueDate.String()))
	}
	return lines
}

func (m Model) eventLines(events []entity.Event) []string {
	t := m.theme.Task
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, t.Closing.Render(glyph.Announcement.Symbol+" "+ev.EventName)+
			"  "+t.Muted.Render("closes "+ev.RegistrationDeadline.String()))
	}
	return lines
}

func (m Model) noteLines(notes []entity.Note) []string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, m.theme.Panel.Body.Render(glyph.Note.Symbol+" "+n.Content))
	}
	return lines
}

func (m Model) footer() string {
	f := m.theme.Footer
	var b strings.Builder
	for _, a := range m.alerts {
		b.WriteString(f.Alert.Render("⏰ "+a.Title) + "\n")
	}
	if m.err != nil {
		b.WriteString(f.Error.Render(m.err.Error()) + "\n")
	}
	status := "alerts off"
	if m.watch != nil {
		status = "alerts " + m.watch.State().String()
	}
	b.WriteString(f.Status.Render(status) + "  " + f.Help.Render("r refresh · t theme · q quit"))
	return b.String()
}
