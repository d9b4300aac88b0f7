package events

import "time"

// Event is the base interface for all checklist events.
type Event interface {
	EventType() string
	ChecklistKey() string
}

// TopicChecklist carries every engine notification.
const TopicChecklist = "checklist"

// Event type constants
const (
	EventTypeTaskToggled        = "checklist.task_toggled"
	EventTypeChecklistReset     = "checklist.reset"
	EventTypeChecklistCompleted = "checklist.completed"
)

// TaskToggledEvent is published after a task changes state and the change was applied.
type TaskToggledEvent struct {
	Key       string
	TaskID    string
	Done      bool
	Completed int
	Total     int
	Timestamp time.Time
}

func (e TaskToggledEvent) EventType() string    { return EventTypeTaskToggled }
func (e TaskToggledEvent) ChecklistKey() string { return e.Key }

// ChecklistResetEvent is published after a checklist is cleared.
type ChecklistResetEvent struct {
	Key       string
	Timestamp time.Time
}

func (e ChecklistResetEvent) EventType() string    { return EventTypeChecklistReset }
func (e ChecklistResetEvent) ChecklistKey() string { return e.Key }

// ChecklistCompletedEvent is published once when a checklist transitions into
// the complete state. Staying complete does not publish again.
type ChecklistCompletedEvent struct {
	Key       string
	Catalog   string
	Total     int
	Timestamp time.Time
}

func (e ChecklistCompletedEvent) EventType() string    { return EventTypeChecklistCompleted }
func (e ChecklistCompletedEvent) ChecklistKey() string { return e.Key }
