package http

import (
	"encoding/json"
	"net/http"

	contactusecase "portfolio-backend/internal/contact/usecase"
)

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=10000"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, r, err)
		return
	}

	msg, err := h.contact.Submit(r.Context(), contactusecase.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to save message")
		return
	}

	writeJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Message sent successfully!",
		ID:      msg.ID,
	})
}
