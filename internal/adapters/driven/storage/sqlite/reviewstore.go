package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// reviewStore implements driven.ReviewStore on top of the reviews table.
type reviewStore struct {
	store *Store
}

var _ driven.ReviewStore = (*reviewStore)(nil)

// UpvoteCount returns the current count for a record ID. Unknown IDs
// report zero.
func (r *reviewStore) UpvoteCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx,
		"SELECT upvotes FROM reviews WHERE id = ?", id).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading upvotes for %s: %v", domain.ErrStoreUnavailable, id, err)
	}
	return count, nil
}

// Upvote increments the count for a record ID, creating the row when missing.
func (r *reviewStore) Upvote(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty record id", domain.ErrInvalidInput)
	}
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO reviews (id, upvotes) VALUES (?, 1)
		ON CONFLICT(id) DO UPDATE SET upvotes = upvotes + 1
	`, id)
	if err != nil {
		return fmt.Errorf("%w: upvoting %s: %v", domain.ErrStoreUnavailable, id, err)
	}
	return nil
}
