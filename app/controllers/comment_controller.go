package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"rantbox/app/apperrors"
	"rantbox/app/models"
	"rantbox/app/services"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
	logger         *slog.Logger
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService, logger *slog.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

// Create handles POST /api/rant/comment/{id}: a comment on rant {id}.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	rantID := mux.Vars(r)["id"]

	var in models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, apperrors.Validation("request body is not valid JSON"))
		return
	}

	receipt, err := cc.commentService.CreateComment(r.Context(), rantID, &in)
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			cc.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"id":      receipt.ID,
		"message": receiptMessage(receipt.Pending),
	})
}
