package interfaces

import (
	"context"

	"vetdesk/internal/domain/entities"
)

// IAttendanceRepository abstracts draft persistence for the Attendance
// aggregate. The contract is key-value: the session writes the full aggregate
// through under a fixed draft key after every mutation and reads it back once
// at startup.
//
// Load must treat a missing or undecodable draft as (nil, nil): a corrupt
// payload is logged by the adapter and reported as absence, never as a
// startup failure.
type IAttendanceRepository interface {
	Save(ctx context.Context, key string, a entities.Attendance) error
	Load(ctx context.Context, key string) (*entities.Attendance, error)
	Remove(ctx context.Context, key string) error
}
