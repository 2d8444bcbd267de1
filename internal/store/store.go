// Package store defines the persistence interface for WRED profiles.
package store

import (
	"context"

	"github.com/seastack/ecnctl/internal/model"
)

// Store is the narrow contract ecnctl needs from the configuration store:
// read every profile row, or merge-update one field of one row.
type Store interface {
	// ListProfiles returns every profile with the fields it currently holds.
	ListProfiles(ctx context.Context) ([]*model.Profile, error)

	// SetProfileField merge-updates a single field of the named profile,
	// leaving its other fields untouched. Whether a missing profile row is
	// implicitly created is up to the implementation.
	SetProfileField(ctx context.Context, profile, field, value string) error

	// Lifecycle
	Close() error
}
