package interfaces

import (
	"context"

	"vetdesk/internal/domain/entities"
)

// IAccountLookup abstracts the guardian/patient directory.
//
// The identifier is a digits-only string (tax id or phone); input masking and
// digit-count validation happen before this port is called. A miss returns
// (nil, nil) so handlers can surface not-found as an informational message.
type IAccountLookup interface {
	Lookup(ctx context.Context, identifier string) (*entities.LookupResult, error)
}
