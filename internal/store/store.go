// Package store persists the floating control's last committed position.
package store

import (
	"context"

	"github.com/bnema/termfab/internal/geometry"
)

// PositionStore is durable whole-record persistence of the control position.
// Load reports absence (rather than an error) for missing or malformed
// records; the caller supplies the default anchor in that case.
type PositionStore interface {
	// Load returns the persisted position. The second return is false when
	// no valid record exists.
	Load(ctx context.Context) (geometry.Point, bool, error)
	// Save replaces the persisted record with p.
	Save(ctx context.Context, p geometry.Point) error
	// Clear removes the persisted record.
	Clear(ctx context.Context) error
}
