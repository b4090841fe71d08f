package services

import (
	"context"
	"log/slog"
	"time"

	"rantbox/app/apperrors"
	"rantbox/app/models"
	"rantbox/app/repositories"
)

// RantService handles business logic for rants: payload validation,
// pagination over the assembled set, and write orchestration.
type RantService struct {
	rantRepo    repositories.RantRepository
	commentRepo repositories.CommentRepository
	logger      *slog.Logger
}

// NewRantService creates a new RantService.
func NewRantService(rantRepo repositories.RantRepository, commentRepo repositories.CommentRepository,
	logger *slog.Logger,
) *RantService {
	return &RantService{
		rantRepo:    rantRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// RantListing is one page of rants plus pagination metadata.
type RantListing struct {
	Rants []*models.Rant `json:"rants"`
	models.Page
}

// RantDetails is a single rant with its assembled comment list.
type RantDetails struct {
	*models.Rant
	Comments []*models.Comment `json:"comment"`
}

// WriteReceipt reports a submitted transaction: its id and whether
// confirmation is still pending.
type WriteReceipt struct {
	ID      string
	Pending bool
}

// ListRants assembles the full rant set and slices out the requested page.
// Totals are computed over the full set, never the slice.
func (s *RantService) ListRants(ctx context.Context, page, limit int) (*RantListing, error) {
	if page < 1 {
		return nil, apperrors.Validation("page must be a positive number")
	}
	if limit < 1 {
		return nil, apperrors.Validation("limit must be a positive number")
	}

	rants, err := s.rantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	p := models.NewPage(len(rants), page, limit)
	start, end := p.Bounds(len(rants))

	return &RantListing{
		Rants: rants[start:end],
		Page:  p,
	}, nil
}

// GetRant fetches a single rant and its comments.
func (s *RantService) GetRant(ctx context.Context, id string) (*RantDetails, error) {
	rant, err := s.rantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByRant(ctx, id)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return &RantDetails{
		Rant:     rant,
		Comments: comments,
	}, nil
}

// CreateRant validates the input and submits it through the write pipeline.
// The creation timestamp is server-assigned; any client-supplied value is
// ignored.
func (s *RantService) CreateRant(ctx context.Context, in *models.RantInput) (*WriteReceipt, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rant := &models.Rant{
		Rant:      in.Rant,
		Category:  in.Category,
		TOC:       in.TOC,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	id, pending, err := s.rantRepo.Create(ctx, rant)
	if err != nil {
		return nil, err
	}

	s.logger.Info("rant submitted", "id", id, "pending", pending)
	return &WriteReceipt{ID: id, Pending: pending}, nil
}
