package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for dayplan resources.
	uriScheme = "schedule://"
)

// taskRecord mirrors the persisted schedule layout so resource reads look
// the same as the schedule file on disk.
type taskRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	StartMinutes int       `json:"startMinutes"`
	EndMinutes   int       `json:"endMinutes"`
	Priority     string    `json:"priority"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newTaskRecord(task domain.Task) taskRecord {
	return taskRecord{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		StartMinutes: task.StartMinutes,
		EndMinutes:   task.EndMinutes,
		Priority:     task.Priority.String(),
		Completed:    task.Completed,
		CreatedAt:    task.CreatedAt,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the day's schedule.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "today",
		Name:        "today",
		Description: "Today's full schedule in start-time order",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	// Template for individual tasks.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tasks/{taskId}",
		Name:        "task",
		Description: "A single scheduled task",
		MIMEType:    "application/json",
	}, s.handleTaskResource)
}

// handleScheduleResource returns the full schedule in start-time order.
func (s *Server) handleScheduleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tasks := s.ports.Scheduler.ListTasks()

	records := make([]taskRecord, len(tasks))
	for i := range tasks {
		records[i] = newTaskRecord(tasks[i])
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling schedule: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTaskResource returns one task by id.
func (s *Server) handleTaskResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract taskId from URI: schedule://tasks/{taskId}
	taskID := extractTaskID(req.Params.URI)
	if taskID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	task, err := s.ports.Scheduler.FindTaskByID(taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}

	data, err := json.MarshalIndent(newTaskRecord(*task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling task: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTaskID extracts the task ID from a URI like schedule://tasks/{taskId}.
func extractTaskID(uri string) string {
	const prefix = uriScheme + "tasks/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
