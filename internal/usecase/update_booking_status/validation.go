package update_booking_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if strings.TrimSpace(req.ID) == "" || req.Status == "" {
		return "", ErrInvalidInput
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %q, must be pending, confirmed, or cancelled", ErrInvalidStatus, req.Status)
	}

	return status, nil
}
