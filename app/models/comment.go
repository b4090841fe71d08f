package models

import (
	"github.com/go-playground/validator/v10"

	"rantbox/app/apperrors"
)

// Validate checks the comment body against its length bounds, reporting the
// first failing constraint.
func (in *CommentInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return apperrors.Validation("Something went wrong")
		}
		if errs[0].Tag() == "max" {
			return apperrors.Validation("Comment cannot exceed 500 characters")
		}
		return apperrors.Validation("Comment is too short")
	}

	return nil
}
