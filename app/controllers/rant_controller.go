package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rantbox/app/apperrors"
	"rantbox/app/models"
	"rantbox/app/services"
)

// RantController handles HTTP requests for rants.
type RantController struct {
	rantService *services.RantService
	logger      *slog.Logger
}

// NewRantController creates a new RantController.
func NewRantController(rantService *services.RantService, logger *slog.Logger) *RantController {
	return &RantController{
		rantService: rantService,
		logger:      logger,
	}
}

// Index handles GET /api/rant/get-all?page=&limit=.
func (rc *RantController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		sendError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		sendError(w, err)
		return
	}

	listing, err := rc.rantService.ListRants(r.Context(), page, limit)
	if err != nil {
		rc.fail(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"payload": listing,
		"message": "Rants fetched successfully",
	})
}

// Show handles GET /api/rant/details/{id}: the rant plus its comment list.
func (rc *RantController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	details, err := rc.rantService.GetRant(r.Context(), id)
	if err != nil {
		rc.fail(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, struct {
		*services.RantDetails
		Message string `json:"message"`
	}{
		RantDetails: details,
		Message:     "Rant Fetched successfully",
	})
}

// Create handles POST /api/rant/create.
//
// A failure response does not guarantee nothing reached the ledger: an error
// during or after submission may still leave a pending transaction behind.
func (rc *RantController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.RantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, apperrors.Validation("request body is not valid JSON"))
		return
	}

	receipt, err := rc.rantService.CreateRant(r.Context(), &in)
	if err != nil {
		rc.fail(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"id":      receipt.ID,
		"message": receiptMessage(receipt.Pending),
	})
}

// Greet handles GET /api/rant/greet, a liveness greeting.
func (rc *RantController) Greet(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to rantbox, let it all out",
	})
}

func (rc *RantController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statusFor(err) >= http.StatusInternalServerError {
		rc.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	sendError(w, err)
}

// queryInt parses a required positive integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, apperrors.Validation(name + " is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation(name + " must be a number")
	}
	return v, nil
}
