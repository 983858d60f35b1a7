package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/taskfactory"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive scheduling session",
	Long: `Starts a line-based interactive session. This is also what running
dayplan without arguments does.

Commands:
  add              add a task (prompts for each field)
  remove           remove a task by id
  view             show the schedule
  view:<priority>  show only tasks with that priority, e.g. view:high
  edit             edit a task by id (blank input keeps the current value)
  complete         mark a task as done
  help             show this command list
  exit             leave the session`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// session holds the state of one interactive run: where input comes from,
// where output goes, and whether prompts should be printed at all.
type session struct {
	cmd    *cobra.Command
	reader *bufio.Reader

	// interactive is false when stdin is not a terminal (piped input,
	// tests). Prompts are suppressed then, so output stays clean.
	interactive bool
}

func runSession(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	in := cmd.InOrStdin()
	s := &session{
		cmd:         cmd,
		reader:      bufio.NewReader(in),
		interactive: stdinIsTerminal(in),
	}

	if s.interactive {
		cmd.Println("dayplan — one day, no overlaps. Type 'help' for commands.")
	}

	for {
		s.prompt("> ")
		line, err := s.readLine()
		if err != nil {
			// EOF ends the session as gracefully as typing exit.
			if s.interactive {
				cmd.Println()
			}
			return nil
		}

		if done := s.dispatch(line); done {
			return nil
		}
	}
}

// dispatch runs one session command. Returns true when the session should
// end. Command failures are printed, never returned: the session survives
// bad input.
func (s *session) dispatch(line string) bool {
	switch {
	case line == "":
		return false

	case line == "exit" || line == "quit":
		s.cmd.Println("Bye.")
		return true

	case line == "help":
		s.printHelp()

	case line == "view":
		printSchedule(s.cmd, scheduler.ListTasks())

	case strings.HasPrefix(line, "view:"):
		priority := strings.TrimPrefix(line, "view:")
		printSchedule(s.cmd, scheduler.ListTasksByPriority(priority))

	case line == "add":
		s.addTask()

	case line == "remove":
		s.removeTask()

	case line == "edit":
		s.editTask()

	case line == "complete":
		s.completeTask()

	default:
		s.cmd.Printf("Unknown command %q. Type 'help' for commands.\n", line)
	}
	return false
}

func (s *session) printHelp() {
	s.cmd.Println(`Commands:
  add              add a task (prompts for each field)
  remove           remove a task by id
  view             show the schedule
  view:<priority>  show only tasks with that priority, e.g. view:high
  edit             edit a task by id (blank input keeps the current value)
  complete         mark a task as done
  help             show this command list
  exit             leave the session`)
}

// addTask prompts for every field of a new task and schedules it.
func (s *session) addTask() {
	title, err := s.ask("Title: ")
	if err != nil {
		return
	}
	desc, err := s.ask("Description (optional): ")
	if err != nil {
		return
	}
	start, err := s.ask("Start (HH:mm): ")
	if err != nil {
		return
	}
	end, err := s.ask("End (HH:mm): ")
	if err != nil {
		return
	}
	priority, err := s.ask("Priority (Low/Medium/High) [Medium]: ")
	if err != nil {
		return
	}

	task, err := taskfactory.Build(taskfactory.Params{
		Title:       title,
		Description: desc,
		Start:       start,
		End:         end,
		Priority:    priority,
	})
	if err != nil {
		s.fail(err)
		return
	}

	if err := scheduler.AddTask(context.Background(), task); err != nil {
		s.fail(err)
		return
	}
	s.cmd.Printf("Added %q (%s) with id %s\n", task.Title, task.TimeRange(), shortID(task.ID))
}

// editTask prompts for a task id and then for each field, blank keeping the
// current value.
func (s *session) editTask() {
	input, err := s.ask("Task id: ")
	if err != nil {
		return
	}
	id, err := resolveTaskID(input)
	if err != nil {
		s.fail(err)
		return
	}
	current, err := scheduler.FindTaskByID(id)
	if err != nil {
		s.fail(err)
		return
	}

	s.cmd.Printf("Editing %q (%s). Blank keeps the current value.\n", current.Title, current.TimeRange())

	var params taskfactory.UpdateParams
	if v, err := s.ask(fmt.Sprintf("Title [%s]: ", current.Title)); err != nil {
		return
	} else if v != "" {
		params.Title = &v
	}
	if v, err := s.ask(fmt.Sprintf("Description [%s]: ", current.Description)); err != nil {
		return
	} else if v != "" {
		params.Description = &v
	}
	if v, err := s.ask(fmt.Sprintf("Start [%s]: ", domain.FormatClock(current.StartMinutes))); err != nil {
		return
	} else if v != "" {
		params.Start = &v
	}
	if v, err := s.ask(fmt.Sprintf("End [%s]: ", domain.FormatClock(current.EndMinutes))); err != nil {
		return
	} else if v != "" {
		params.End = &v
	}
	if v, err := s.ask(fmt.Sprintf("Priority [%s]: ", current.Priority)); err != nil {
		return
	} else if v != "" {
		params.Priority = &v
	}

	update, err := taskfactory.BuildUpdate(params)
	if err != nil {
		s.fail(err)
		return
	}

	if err := scheduler.EditTask(context.Background(), id, update); err != nil {
		s.fail(err)
		return
	}
	edited, err := scheduler.FindTaskByID(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.cmd.Printf("Updated %q (%s)\n", edited.Title, edited.TimeRange())
}

func (s *session) removeTask() {
	input, err := s.ask("Task id: ")
	if err != nil {
		return
	}
	id, err := resolveTaskID(input)
	if err != nil {
		s.fail(err)
		return
	}
	task, err := scheduler.FindTaskByID(id)
	if err != nil {
		s.fail(err)
		return
	}
	if err := scheduler.RemoveTask(context.Background(), id); err != nil {
		s.fail(err)
		return
	}
	s.cmd.Printf("Removed %q (%s)\n", task.Title, task.TimeRange())
}

func (s *session) completeTask() {
	input, err := s.ask("Task id: ")
	if err != nil {
		return
	}
	id, err := resolveTaskID(input)
	if err != nil {
		s.fail(err)
		return
	}
	if err := scheduler.MarkCompleted(context.Background(), id); err != nil {
		s.fail(err)
		return
	}
	task, err := scheduler.FindTaskByID(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.cmd.Printf("Completed %q\n", task.Title)
}

// ask prints a prompt and reads one trimmed line.
func (s *session) ask(prompt string) (string, error) {
	s.prompt(prompt)
	return s.readLine()
}

func (s *session) prompt(text string) {
	if s.interactive {
		s.cmd.Print(text)
	}
}

func (s *session) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) fail(err error) {
	s.cmd.Printf("Error: %v\n", err)
}

// stdinIsTerminal reports whether in is an interactive terminal.
func stdinIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
