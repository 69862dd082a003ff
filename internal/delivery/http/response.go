package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/problemdetails"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeProblem writes an RFC 7807 Problem Details response
func writeProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

func writeInvalidJSON(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, problemdetails.New(
		http.StatusBadRequest,
		problemdetails.TypeInvalidRequest,
		"Invalid Request",
		"Request body must be valid JSON",
	).WithInstance(r.URL.Path))
}

// writeValidation turns validator errors into a problem with one entry per field.
func writeValidation(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeInvalidJSON(w, r)
		return
	}

	fields := make([]problemdetails.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, problemdetails.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	writeProblem(w, problemdetails.NewValidation(fields).WithInstance(r.URL.Path))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "http_url":
		return "must be an http or https URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}

// writeError maps service errors to problem details. Unknown errors are
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeValidationError,
			"Validation Failed",
			err.Error(),
		).WithInstance(r.URL.Path))
	case errors.Is(err, domain.ErrLinkNotFound):
		writeProblem(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			"Link not found",
		).WithInstance(r.URL.Path))
	default:
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("detail", failure),
			zap.Error(err),
		)
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			failure,
		).WithInstance(r.URL.Path))
	}
}
