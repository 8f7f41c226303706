package access

import (
	"context"

	"github.com/uptrace/bun"

	accessservice "github.com/Black-And-White-Club/dxwager/app/modules/access/application"
	accessdb "github.com/Black-And-White-Club/dxwager/app/modules/access/infrastructure/repositories"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
)

// Module provides the case standing guard to the modules that gate on it.
type Module struct {
	guard accessservice.Guard
}

// NewModule creates the access module. It registers no routes.
func NewModule(ctx context.Context, obs observability.Observability, db *bun.DB) (*Module, error) {
	obs.Logger.InfoContext(ctx, "Initializing access module")

	repo := accessdb.NewRepository(db)
	guard := accessservice.NewAccessService(repo, obs.Logger, obs.Metrics, obs.Tracer("accessservice"), db)

	return &Module{guard: guard}, nil
}

// Guard returns the standing guard.
func (m *Module) Guard() accessservice.Guard {
	return m.guard
}
