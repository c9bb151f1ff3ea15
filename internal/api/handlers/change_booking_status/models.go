package change_booking_status

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatusResponse HTTP response model
type ChangeStatusResponse struct {
	Success      bool                 `json:"success"`
	Notification *domain.Notification `json:"notification"`
}
