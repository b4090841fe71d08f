package services

import (
	"context"
	"log/slog"
	"time"

	"rantbox/app/apperrors"
	"rantbox/app/models"
	"rantbox/app/repositories"
)

// CommentService handles business logic for comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	rantRepo    repositories.RantRepository
	logger      *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, rantRepo repositories.RantRepository,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		rantRepo:    rantRepo,
		logger:      logger,
	}
}

// CreateComment validates the input, verifies the parent rant exists, and
// submits the comment through the write pipeline.
func (s *CommentService) CreateComment(ctx context.Context, rantID string, in *models.CommentInput) (*WriteReceipt, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.rantRepo.Exists(ctx, rantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Rant doesnt exist, Please try again later")
	}

	comment := &models.Comment{
		TransactionID: rantID,
		Comment:       in.Comment,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	id, pending, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment submitted", "id", id, "rant", rantID, "pending", pending)
	return &WriteReceipt{ID: id, Pending: pending}, nil
}
