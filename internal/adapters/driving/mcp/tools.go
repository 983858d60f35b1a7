package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/taskfactory"
)

// TaskOutput is the wire representation of a scheduled task.
type TaskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// newTaskOutput converts a domain task to its wire form.
func newTaskOutput(task domain.Task) TaskOutput {
	return TaskOutput{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Start:       domain.FormatClock(task.StartMinutes),
		End:         domain.FormatClock(task.EndMinutes),
		Priority:    task.Priority.String(),
		Completed:   task.Completed,
	}
}

// AddTaskInput is the input schema for the add_task tool.
type AddTaskInput struct {
	Title       string `json:"title" jsonschema:"title of the task"`
	Description string `json:"description,omitempty" jsonschema:"optional free-text description"`
	Start       string `json:"start" jsonschema:"start time as HH:mm on the 24-hour clock"`
	End         string `json:"end" jsonschema:"end time as HH:mm, must be after start"`
	Priority    string `json:"priority,omitempty" jsonschema:"Low, Medium or High (default Medium)"`
}

// AddTaskOutput is the output schema for the add_task tool.
type AddTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// EditTaskInput is the input schema for the edit_task tool.
// Omitted fields keep the task's current values.
type EditTaskInput struct {
	ID          string  `json:"id" jsonschema:"id of the task to edit"`
	Title       *string `json:"title,omitempty" jsonschema:"new title"`
	Description *string `json:"description,omitempty" jsonschema:"new description, empty string clears it"`
	Start       *string `json:"start,omitempty" jsonschema:"new start time as HH:mm"`
	End         *string `json:"end,omitempty" jsonschema:"new end time as HH:mm"`
	Priority    *string `json:"priority,omitempty" jsonschema:"new priority: Low, Medium or High"`
}

// EditTaskOutput is the output schema for the edit_task tool.
type EditTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// RemoveTaskInput is the input schema for the remove_task tool.
type RemoveTaskInput struct {
	ID string `json:"id" jsonschema:"id of the task to remove"`
}

// RemoveTaskOutput is the output schema for the remove_task tool.
type RemoveTaskOutput struct {
	ID string `json:"id"`
}

// CompleteTaskInput is the input schema for the complete_task tool.
type CompleteTaskInput struct {
	ID string `json:"id" jsonschema:"id of the task to mark completed"`
}

// CompleteTaskOutput is the output schema for the complete_task tool.
type CompleteTaskOutput struct {
	Task TaskOutput `json:"task"`
}

// ListTasksInput is the input schema for the list_tasks tool.
type ListTasksInput struct {
	Priority string `json:"priority,omitempty" jsonschema:"only return tasks with this priority (Low, Medium or High)"`
}

// ListTasksOutput is the output schema for the list_tasks tool.
type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
	Count int          `json:"count"`
}

// FindTaskInput is the input schema for the find_task tool.
type FindTaskInput struct {
	ID    string `json:"id,omitempty" jsonschema:"exact task id to look up"`
	Title string `json:"title,omitempty" jsonschema:"exact title to match, ignoring case"`
}

// FindTaskOutput is the output schema for the find_task tool.
type FindTaskOutput struct {
	Tasks []TaskOutput `json:"tasks"`
	Count int          `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task to today's schedule. Fails if the interval overlaps an existing task.",
	}, s.handleAddTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edit_task",
		Description: "Edit fields of a scheduled task. Omitted fields keep their current values.",
	}, s.handleEditTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_task",
		Description: "Remove a task from today's schedule.",
	}, s.handleRemoveTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "complete_task",
		Description: "Mark a scheduled task as completed.",
	}, s.handleCompleteTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List today's tasks in start-time order, optionally filtered by priority.",
	}, s.handleListTasks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_task",
		Description: "Find tasks by exact id or by exact title (case-insensitive).",
	}, s.handleFindTask)
}

// handleAddTask handles the add_task tool invocation.
func (s *Server) handleAddTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddTaskInput,
) (*mcp.CallToolResult, AddTaskOutput, error) {
	task, err := taskfactory.Build(taskfactory.Params{
		Title:       input.Title,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		Priority:    input.Priority,
	})
	if err != nil {
		return nil, AddTaskOutput{}, err
	}

	if err := s.ports.Scheduler.AddTask(ctx, task); err != nil {
		return nil, AddTaskOutput{}, err
	}

	return nil, AddTaskOutput{Task: newTaskOutput(task)}, nil
}

// handleEditTask handles the edit_task tool invocation.
func (s *Server) handleEditTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EditTaskInput,
) (*mcp.CallToolResult, EditTaskOutput, error) {
	update, err := taskfactory.BuildUpdate(taskfactory.UpdateParams{
		Title:       input.Title,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		Priority:    input.Priority,
	})
	if err != nil {
		return nil, EditTaskOutput{}, err
	}

	if err := s.ports.Scheduler.EditTask(ctx, input.ID, update); err != nil {
		return nil, EditTaskOutput{}, err
	}

	task, err := s.ports.Scheduler.FindTaskByID(input.ID)
	if err != nil {
		return nil, EditTaskOutput{}, fmt.Errorf("reloading task: %w", err)
	}

	return nil, EditTaskOutput{Task: newTaskOutput(*task)}, nil
}

// handleRemoveTask handles the remove_task tool invocation.
func (s *Server) handleRemoveTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveTaskInput,
) (*mcp.CallToolResult, RemoveTaskOutput, error) {
	if err := s.ports.Scheduler.RemoveTask(ctx, input.ID); err != nil {
		return nil, RemoveTaskOutput{}, err
	}

	return nil, RemoveTaskOutput{ID: input.ID}, nil
}

// handleCompleteTask handles the complete_task tool invocation.
func (s *Server) handleCompleteTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompleteTaskInput,
) (*mcp.CallToolResult, CompleteTaskOutput, error) {
	if err := s.ports.Scheduler.MarkCompleted(ctx, input.ID); err != nil {
		return nil, CompleteTaskOutput{}, err
	}

	task, err := s.ports.Scheduler.FindTaskByID(input.ID)
	if err != nil {
		return nil, CompleteTaskOutput{}, fmt.Errorf("reloading task: %w", err)
	}

	return nil, CompleteTaskOutput{Task: newTaskOutput(*task)}, nil
}

// handleListTasks handles the list_tasks tool invocation.
func (s *Server) handleListTasks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListTasksInput,
) (*mcp.CallToolResult, ListTasksOutput, error) {
	var tasks []domain.Task
	if input.Priority != "" {
		// Reject unknown priority words here: silently returning an empty
		// schedule would read as "no tasks" to the caller.
		if _, err := domain.ParsePriority(input.Priority); err != nil {
			return nil, ListTasksOutput{}, err
		}
		tasks = s.ports.Scheduler.ListTasksByPriority(input.Priority)
	} else {
		tasks = s.ports.Scheduler.ListTasks()
	}

	output := ListTasksOutput{
		Tasks: make([]TaskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i := range tasks {
		output.Tasks[i] = newTaskOutput(tasks[i])
	}

	return nil, output, nil
}

// handleFindTask handles the find_task tool invocation.
func (s *Server) handleFindTask(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FindTaskInput,
) (*mcp.CallToolResult, FindTaskOutput, error) {
	switch {
	case input.ID != "":
		task, err := s.ports.Scheduler.FindTaskByID(input.ID)
		if err != nil {
			return nil, FindTaskOutput{}, err
		}
		return nil, FindTaskOutput{Tasks: []TaskOutput{newTaskOutput(*task)}, Count: 1}, nil

	case input.Title != "":
		tasks := s.ports.Scheduler.FindTasksByTitle(input.Title)
		output := FindTaskOutput{
			Tasks: make([]TaskOutput, len(tasks)),
			Count: len(tasks),
		}
		for i := range tasks {
			output.Tasks[i] = newTaskOutput(tasks[i])
		}
		return nil, output, nil

	default:
		return nil, FindTaskOutput{}, fmt.Errorf("%w: id or title is required", domain.ErrInvalidInput)
	}
}
