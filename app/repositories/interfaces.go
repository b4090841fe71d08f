package repositories

import (
	"context"

	"rantbox/app/models"
)

// RantRepository defines ledger-backed data access for rants.
type RantRepository interface {
	// List assembles the full ordered rant set. Pagination is applied by
	// the caller after assembly.
	List(ctx context.Context) ([]*models.Rant, error)

	// GetByID fetches a single rant by transaction id.
	GetByID(ctx context.Context, id string) (*models.Rant, error)

	// Exists reports whether a rant transaction with this id belongs to
	// the application's dataset.
	Exists(ctx context.Context, id string) (bool, error)

	// Create submits the rant as a signed transaction and returns its id
	// and whether confirmation is still pending.
	Create(ctx context.Context, rant *models.Rant) (string, bool, error)
}

// CommentRepository defines ledger-backed data access for comments.
type CommentRepository interface {
	// ListByRant assembles all comments tagged with the given parent id.
	ListByRant(ctx context.Context, rantID string) ([]*models.Comment, error)

	// Create submits the comment as a signed transaction tagged with its
	// parent id.
	Create(ctx context.Context, comment *models.Comment) (string, bool, error)
}
