// Package notify provides driven.Notifier implementations that fan schedule
// change messages out to the console and to a log file.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
)

// Ensure ConsoleNotifier implements the interface.
var _ driven.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier prints schedule change messages to a writer.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a console notifier writing to w.
// If w is nil, defaults to stdout.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{w: w}
}

// Update prints the message, prefixed so notifications stand out from
// ordinary command output.
func (n *ConsoleNotifier) Update(message string) {
	fmt.Fprintf(n.w, "▸ %s\n", message)
}
