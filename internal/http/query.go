package httpapi

import (
	"net/http"
	"strings"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
)

// dateRangeFromQuery reads start_date and end_date. Missing values are left zero
// for the input validator to report; unparsable ones are reported here.
func dateRangeFromQuery(r *http.Request) (models.DateRangeInput, error) {
	verr := &models.ValidationError{}
	window := models.DateRangeInput{
		StartDate: queryDate(r, "start_date", verr),
		EndDate:   queryDate(r, "end_date", verr),
	}
	if len(verr.Fields) > 0 {
		return models.DateRangeInput{}, verr
	}
	return window, nil
}

func queryDate(r *http.Request, name string, verr *models.ValidationError) models.Date {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return models.Date{}
	}
	day, err := models.ParseDate(raw)
	if err != nil {
		verr.Add(name, "date", "must be a date (YYYY-MM-DD)")
		return models.Date{}
	}
	return day
}

func queryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}
