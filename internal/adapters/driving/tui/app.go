package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/keymap"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/messages"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/styles"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/views/schedule"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// scheduleView is the day-timeline view component.
	scheduleView *schedule.View

	// listener receives scheduler event broadcasts for the event line.
	listener *listener

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The app subscribes to the scheduler's event broadcast; call Close when
// the program exits to detach again.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	scheduleView := schedule.NewView(s, km, ports.Scheduler)

	l := newListener()
	ports.Scheduler.Subscribe(l)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		scheduleView: scheduleView,
		listener:     l,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.scheduleView.WithContext(ctx)
	return a
}

// Close detaches the app from the scheduler's event broadcast.
// The event channel stays open: the scheduler snapshots its listeners
// before delivering, so a broadcast may still land just after Close.
func (a *App) Close() {
	if a.ports != nil && a.ports.Scheduler != nil {
		a.ports.Scheduler.Unsubscribe(a.listener)
	}
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("dayplan - Day Planner"),
		a.scheduleView.Init(),
		a.listener.waitForEvent(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.scheduleView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.scheduleView, cmd = a.scheduleView.Update(msg)
		return a, cmd

	case messages.EventReceived:
		// Forward the event to the view, then rearm the wait so the next
		// broadcast comes through as well.
		a.scheduleView, cmd = a.scheduleView.Update(msg)
		return a, tea.Batch(cmd, a.listener.waitForEvent())

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.scheduleView, cmd = a.scheduleView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the schedule view
	a.scheduleView, cmd = a.scheduleView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.scheduleView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Tasks returns the rows currently displayed.
func (a *App) Tasks() []domain.Task {
	return a.scheduleView.Tasks()
}

// SelectedIndex returns the cursor index in the task list.
func (a *App) SelectedIndex() int {
	return a.scheduleView.SelectedIndex()
}

// SelectedTask returns the task under the cursor.
func (a *App) SelectedTask() *domain.Task {
	return a.scheduleView.SelectedTask()
}

// Event returns the most recent event line.
func (a *App) Event() string {
	return a.scheduleView.Event()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.scheduleView.SetDimensions(width, height)
}
