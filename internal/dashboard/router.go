package dashboard

import (
	"context"
	"fmt"

	"github.com/davetashner/icudash/internal/filter"
)

// Router turns a chart-segment selection into a narrower query. The dropdown
// values are left untouched.
type Router struct {
	state   *filter.State
	refresh func(ctx context.Context) error
}

// DrillDown replaces the override with key=label and refreshes.
func (r *Router) DrillDown(ctx context.Context, key, label string) error {
	if !filter.IsDrillDownKey(key) {
		return fmt.Errorf("unknown drill-down key %q", key)
	}
	r.state.SetOverride(key, label)
	return r.refresh(ctx)
}
