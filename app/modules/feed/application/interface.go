package feedservice

import (
	"context"

	"github.com/google/uuid"

	feeddomain "github.com/Black-And-White-Club/dxwager/app/modules/feed/domain"
)

// Service builds a user's activity feed.
type Service interface {
	// Events returns the newest events on cases the user has a stake in, plus
	// cases shared with the user's groups. A non-positive limit selects the
	// default; limits above the maximum are capped.
	Events(ctx context.Context, userID uuid.UUID, limit int) ([]feeddomain.Event, error)
}
