package driven

// Notifier receives plain-text schedule event messages.
//
// Delivery is best-effort broadcast, not a reliability mechanism: the
// scheduler swallows per-listener failures so one bad listener can neither
// block the others nor fail the mutation that triggered the event.
// Implementations should still avoid panicking.
type Notifier interface {
	// Update delivers one event message.
	Update(message string)
}
