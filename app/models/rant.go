package models

import (
	"github.com/go-playground/validator/v10"

	"rantbox/app/apperrors"
)

// Validate checks the input against its field constraints and reports the
// first failing one as a user-readable validation error.
func (in *RantInput) Validate() error {
	if !in.TOC {
		return apperrors.Validation("Invalid Action, you did not accept the Terms and condition")
	}

	if err := validate.Struct(in); err != nil {
		return apperrors.Validation(firstRantIssue(err))
	}

	return nil
}

func firstRantIssue(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Something went wrong"
	}

	fe := errs[0]
	switch fe.Field() {
	case "Rant":
		if fe.Tag() == "max" {
			return "Rant cannot exceed 500 characters"
		}
		return "Rant is too short"
	case "Category":
		if fe.Tag() == "max" {
			return "Category cannot exceed 64 characters"
		}
		return "Category is too short"
	case "TOC":
		return "You must agree to the terms and conditions"
	default:
		return "Something went wrong"
	}
}
