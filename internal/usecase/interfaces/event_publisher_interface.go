package interfaces

import "context"

// UIEvent is a notification emitted by the core for the presentation layer.
type UIEvent struct {
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Event types emitted by the attendance core.
const (
	EventAttendanceStarted   = "attendance_started"
	EventStepChanged         = "step_changed"
	EventCartChanged         = "cart_changed"
	EventCoverageBlocked     = "coverage_blocked"
	EventPaymentSimulated    = "payment_simulated"
	EventAttendanceFinished  = "attendance_finished"
	EventAttendanceCancelled = "attendance_cancelled"
	EventScheduleConfirmed   = "schedule_confirmed"
	EventServiceForwarded    = "service_forwarded"
)

// IEventPublisher delivers UI events to the presentation layer. Publishing
// must never fail the originating operation; implementations swallow and log
// delivery problems.
type IEventPublisher interface {
	Publish(ctx context.Context, event UIEvent)
}
