// Package tasklist provides the navigable task rows for the TUI timeline.
package tasklist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/styles"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// TaskList displays the day's tasks in start-time order with a cursor.
type TaskList struct {
	tasks    []domain.Task
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTaskList creates a new task list component.
func NewTaskList(s *styles.Styles) *TaskList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &TaskList{
		tasks:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the task list.
func (l *TaskList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *TaskList) Update(msg tea.Msg) (*TaskList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the task rows.
func (l *TaskList) View() string {
	if len(l.tasks) == 0 {
		return l.styles.Muted.Render("No tasks scheduled. Add one with 'dayplan add'.")
	}

	// One row per task; the window slides to keep the cursor visible.
	visibleCount := l.height
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.tasks) {
		end = len(l.tasks)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderTask(i, &l.tasks[i]))
	}

	return strings.Join(lines, "\n")
}

// renderTask formats a single task row.
func (l *TaskList) renderTask(index int, task *domain.Task) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	done := " "
	if task.Completed {
		done = "✓"
	}

	title := task.Title
	maxTitleLen := l.width - 30
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	row := fmt.Sprintf("%s%s %s  %-8s %s", indicator, done, task.TimeRange(),
		"["+task.Priority.String()+"]", title)

	if index == l.selected {
		return l.styles.Selected.Render(row)
	}
	if task.Completed {
		return l.styles.Done.Render(row)
	}
	return l.styles.Normal.Render(fmt.Sprintf("%s%s %s  ", indicator, done, task.TimeRange())) +
		l.priorityStyle(task.Priority).Render(fmt.Sprintf("%-8s", "["+task.Priority.String()+"]")) +
		l.styles.Normal.Render(" "+title)
}

// priorityStyle maps a priority to its display style.
func (l *TaskList) priorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return l.styles.Warning
	case domain.PriorityLow:
		return l.styles.Muted
	default:
		return l.styles.Normal
	}
}

// SetTasks replaces the rows, keeping the cursor on the same task when it
// survives the update and clamping it otherwise.
func (l *TaskList) SetTasks(tasks []domain.Task) {
	prevID := ""
	if t := l.SelectedTask(); t != nil {
		prevID = t.ID
	}
	prev := l.selected

	l.tasks = tasks
	for i := range tasks {
		if tasks[i].ID == prevID {
			l.selected = i
			return
		}
	}

	if prev >= len(tasks) {
		prev = len(tasks) - 1
	}
	if prev < 0 {
		prev = 0
	}
	l.selected = prev
}

// Tasks returns the current rows.
func (l *TaskList) Tasks() []domain.Task {
	return l.tasks
}

// Selected returns the cursor index.
func (l *TaskList) Selected() int {
	return l.selected
}

// SetSelected sets the cursor index.
func (l *TaskList) SetSelected(index int) {
	if index >= 0 && index < len(l.tasks) {
		l.selected = index
	}
}

// SelectedTask returns the task under the cursor, or nil if the list is empty.
func (l *TaskList) SelectedTask() *domain.Task {
	if len(l.tasks) == 0 || l.selected < 0 || l.selected >= len(l.tasks) {
		return nil
	}
	return &l.tasks[l.selected]
}

// MoveUp moves the cursor up.
func (l *TaskList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the cursor down.
func (l *TaskList) MoveDown() {
	if l.selected < len(l.tasks)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *TaskList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *TaskList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *TaskList) Height() int {
	return l.height
}

// Count returns the number of tasks.
func (l *TaskList) Count() int {
	return len(l.tasks)
}

// IsEmpty returns whether the list is empty.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}
