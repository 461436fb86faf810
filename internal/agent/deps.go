package agent

import (
	"context"
	"log/slog"

	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
)

// ContextStore is the read-only inventory view the fetch_user_context tool
// exposes to the controller.
type ContextStore interface {
	RecentInventory(ctx context.Context, userID string, limit int) ([]inventory.Record, error)
}

// Dependencies holds the shared services tool implementations need. Built
// once per process and injected at call time; there is no package-level
// singleton.
type Dependencies struct {
	Engine      *inventory.Engine
	Extractor   *extract.Service
	Context     ContextStore
	Invocations InvocationStore
	Logger      *slog.Logger
}
