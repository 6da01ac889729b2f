package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/salary"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Calculate implements SalaryHandler.
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	year, month, errs := parseYearMonth(query.Get("year"), query.Get("month"))
	if errs != nil {
		response.HandleError(w, errs)
		return
	}

	summary, err := h.salaryService.Calculate(r.Context(), ownerID, chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// parseYearMonth only checks that both values are integers; range checks
// belong to the services.
func parseYearMonth(yearStr, monthStr string) (int, int, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
	}
	if len(errs) > 0 {
		return 0, 0, errs
	}
	return year, month, nil
}
