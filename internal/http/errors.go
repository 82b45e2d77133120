package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

const maxJSONBody = 1 << 20

// writeServiceError maps the domain error taxonomy onto HTTP. Unknown errors are
// logged and answered with a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *models.ValidationError
		nf   *services.NotFoundError
		cerr *services.ConstraintError
		serr services.ServiceError
	)
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Code:    CodeValidation,
			Message: "validation failed",
			Fields:  verr.Fields,
		})
	case errors.As(err, &nf):
		WriteError(w, http.StatusNotFound, CodeNotFound, nf.Error())
	case errors.As(err, &cerr):
		WriteError(w, http.StatusConflict, CodeConstraint, cerr.Error())
	case errors.As(err, &serr):
		WriteError(w, serr.Status, codeForStatus(serr.Status), serr.Message)
	default:
		s.Log.ErrorContext(r.Context(), "request failed",
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
			logging.FieldError, err.Error(),
		)
		WriteError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}

// decodeJSON reads one JSON document from the request body into dst. Values of
// the wrong type are reported as validation errors on their field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return services.ServiceError{Status: http.StatusRequestEntityTooLarge, Message: "request body too large"}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			if typeErr.Type == reflect.TypeOf(models.Date{}) {
				return models.NewValidationError(typeErr.Field, "date", "must be a date (YYYY-MM-DD)")
			}
			return models.NewValidationError(typeErr.Field, "type", "must be of type "+typeErr.Type.String())
		}
		if errors.Is(err, io.EOF) {
			return services.ErrBadRequest("request body is empty")
		}
		return services.ErrBadRequest(fmt.Sprintf("invalid payload: %v", err))
	}
	return nil
}
