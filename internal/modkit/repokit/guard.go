package repokit

import (
	"context"
	"fmt"
	"time"
)

// Guarder checks every backend it holds, store.Store implements it
type Guarder interface {
	Guard(context.Context) error
}

// DefaultGuardTimeout bounds Guard when the caller passes no timeout
const DefaultGuardTimeout = 5 * time.Second

// Guard runs g.Guard under timeout, a nil g is an error
func Guard(ctx context.Context, g Guarder, timeout time.Duration) error {
	if g == nil {
		return fmt.Errorf("dependency guard: nil store")
	}
	if timeout <= 0 {
		timeout = DefaultGuardTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := g.Guard(ctx); err != nil {
		return fmt.Errorf("dependency guard: %w", err)
	}
	return nil
}
