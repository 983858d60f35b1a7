// Package schedule provides the day-timeline view for the TUI.
package schedule

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/components/status"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/components/tasklist"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/keymap"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/messages"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/styles"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
)

// View represents the timeline view with the task list, event line, and
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *tasklist.TaskList
	statusbar *status.Bar

	scheduler driving.TaskScheduler
	ctx       context.Context

	width        int
	height       int
	ready        bool
	err          error
	event        string
	showFullHelp bool
}

// NewView creates a new schedule view.
func NewView(s *styles.Styles, km *keymap.KeyMap, scheduler driving.TaskScheduler) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		list:         tasklist.NewTaskList(s),
		statusbar:    status.NewBar(s, km),
		scheduler:    scheduler,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		ready:        false,
		showFullHelp: false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the schedule.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.loadSchedule()
}

// Update handles messages for the schedule view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ScheduleLoaded:
		v.handleScheduleLoaded(msg)
		return v, nil

	case messages.TaskCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		return v, v.loadSchedule()

	case messages.TaskRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		return v, v.loadSchedule()

	case messages.EventReceived:
		// A schedule event arrived from the notifier: show it and refresh
		// the rows so external changes appear without a manual reload.
		v.event = msg.Message
		return v, v.loadSchedule()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	return v, listCmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}

	case keymap.Matches(keyStr, v.keymap.Help):
		v.showFullHelp = !v.showFullHelp
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Complete):
		return v, v.completeSelected()

	case keymap.Matches(keyStr, v.keymap.Remove):
		return v, v.removeSelected()

	case keymap.Matches(keyStr, v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.reloadSchedule()
	}

	return v, nil
}

// loadSchedule returns the current in-memory schedule.
func (v *View) loadSchedule() tea.Cmd {
	return func() tea.Msg {
		if v.scheduler == nil {
			return messages.ErrorOccurred{Err: ErrNoScheduler}
		}
		return messages.ScheduleLoaded{Tasks: v.scheduler.ListTasks()}
	}
}

// reloadSchedule re-reads the schedule from the store.
func (v *View) reloadSchedule() tea.Cmd {
	return func() tea.Msg {
		if v.scheduler == nil {
			return messages.ErrorOccurred{Err: ErrNoScheduler}
		}
		v.scheduler.Load(v.ctx)
		return messages.ScheduleLoaded{Tasks: v.scheduler.ListTasks()}
	}
}

// completeSelected marks the task under the cursor as done.
func (v *View) completeSelected() tea.Cmd {
	task := v.list.SelectedTask()
	if task == nil {
		return nil
	}
	id := task.ID

	return func() tea.Msg {
		if v.scheduler == nil {
			return messages.ErrorOccurred{Err: ErrNoScheduler}
		}
		err := v.scheduler.MarkCompleted(v.ctx, id)
		return messages.TaskCompleted{ID: id, Err: err}
	}
}

// removeSelected deletes the task under the cursor.
func (v *View) removeSelected() tea.Cmd {
	task := v.list.SelectedTask()
	if task == nil {
		return nil
	}
	id := task.ID

	return func() tea.Msg {
		if v.scheduler == nil {
			return messages.ErrorOccurred{Err: ErrNoScheduler}
		}
		err := v.scheduler.RemoveTask(v.ctx, id)
		return messages.TaskRemoved{ID: id, Err: err}
	}
}

// handleScheduleLoaded refreshes the rows from a loaded schedule.
func (v *View) handleScheduleLoaded(msg messages.ScheduleLoaded) {
	v.err = nil
	v.list.SetTasks(msg.Tasks)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetTaskCount(len(msg.Tasks))
}

// View renders the schedule view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("Day Plan")
	sections = append(sections, header, "")

	// Event line: the most recent schedule change notification
	if v.event != "" {
		sections = append(sections, v.styles.Success.Render("▸ "+v.event), "")
	}

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Task rows
	listView := v.list.View()
	sections = append(sections, listView)

	// Selected task description, when present
	if task := v.list.SelectedTask(); task != nil && task.Description != "" {
		sections = append(sections, "", v.styles.Muted.Render("    "+task.Description))
	}

	// Expanded help (toggled with ?)
	if v.showFullHelp {
		sections = append(sections, "", v.renderFullHelp())
	}

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFullHelp renders every keybinding, grouped.
func (v *View) renderFullHelp() string {
	groups := v.keymap.FullHelp()

	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		hints := make([]string, 0, len(group))
		for _, b := range group {
			h := b.Help()
			hints = append(hints, h.Key+": "+h.Desc)
		}
		lines = append(lines, strings.Join(hints, "   "))
	}

	return v.styles.Help.Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.list.SetDimensions(width, height-8) // Reserve space for header, event line, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Tasks returns the rows currently displayed.
func (v *View) Tasks() []domain.Task {
	return v.list.Tasks()
}

// SelectedIndex returns the cursor index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedTask returns the task under the cursor.
func (v *View) SelectedTask() *domain.Task {
	return v.list.SelectedTask()
}

// Event returns the most recent event line.
func (v *View) Event() string {
	return v.event
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// ShowingFullHelp returns whether the expanded help footer is visible.
func (v *View) ShowingFullHelp() bool {
	return v.showFullHelp
}
