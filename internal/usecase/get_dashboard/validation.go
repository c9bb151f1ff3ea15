package get_dashboard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateFilter != nil {
		if err := req.DateFilter.Validate(); err != nil {
			return fmt.Errorf("%w: date filter type must be single or range", ErrInvalidInput)
		}
		if err := validateDay(req.DateFilter.StartDate); err != nil {
			return fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
		}
		if err := validateDay(req.DateFilter.EndDate); err != nil {
			return fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
		}
	}

	if req.Page != nil && *req.Page < domain.FirstPage {
		return fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDay пустая строка допустима (фильтр выключен)
func validateDay(s string) error {
	if s == "" {
		return nil
	}
	_, err := time.Parse(domain.DateFormat, s)
	return err
}
