package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Rant is a single rant as stored on the ledger. The ID is the transaction
// identifier assigned at submission; everything else is the decoded payload.
// Rants are immutable once submitted.
type Rant struct {
	ID        string `json:"id"`
	Rant      string `json:"rant"`
	Category  string `json:"category"`
	TOC       bool   `json:"toc"`
	CreatedAt string `json:"createdAt"`
}

// Comment is a comment on a rant. The parent is referenced by transaction id
// via the TID tag, not by any structural pointer.
type Comment struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionID,omitempty"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"createdAt"`
}

// RantInput is the create-rant request body.
type RantInput struct {
	Rant     string `json:"rant" validate:"required,min=25,max=500"`
	Category string `json:"category" validate:"required,min=2,max=64"`
	TOC      bool   `json:"toc" validate:"eq=true"`
}

// CommentInput is the create-comment request body.
type CommentInput struct {
	Comment string `json:"comment" validate:"required,min=8,max=500"`
}
