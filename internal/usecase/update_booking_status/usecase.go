package update_booking_status

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// UseCase прокси смены статуса бронирования в CMS
type UseCase struct {
	cmsClient     CMSClient
	statusLogRepo StatusLogRepository
	logger        Logger
	auditTimeout  time.Duration
}

// NewUseCase создает новый экземпляр use case; statusLogRepo может быть nil (журнал выключен)
func NewUseCase(cmsClient CMSClient, statusLogRepo StatusLogRepository, logger Logger) *UseCase {
	return &UseCase{
		cmsClient:     cmsClient,
		statusLogRepo: statusLogRepo,
		logger:        logger,
		auditTimeout:  5 * time.Second,
	}
}

// Execute проверяет запрос и отправляет PUT /api/bookings/{id} с новым currentStatus
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: id=%s, status=%s, actor=%s", req.ID, req.Status, req.Actor)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Обновление в CMS
	booking, err := uc.cmsClient.UpdateBookingStatus(ctx, req.ID, status.String())
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: cms error for id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: id=%s: %v", ErrCMSUpdate, req.ID, err)
	}

	// 3. Журнал (ошибки только логируются)
	uc.appendLog(ctx, req.ID, status, req.Actor)

	uc.logger.Info("UpdateBookingStatus: id=%s set to %s", req.ID, status)
	return &Response{Success: true, Booking: booking}, nil
}

// UpdateStatus смена статуса для дашборда
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actor string) error {
	_, err := uc.Execute(ctx, &Request{ID: id, Status: status.String(), Actor: actor})
	return err
}

func (uc *UseCase) appendLog(ctx context.Context, id string, status domain.BookingStatus, actor string) {
	if uc.statusLogRepo == nil {
		return
	}

	// Запись не должна зависеть от отмены запроса клиентом
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.auditTimeout)
	defer cancel()

	_, err := uc.statusLogRepo.Append(auditCtx, &domain.StatusLogEntry{
		BookingRef: id,
		Status:     status,
		Actor:      actor,
	})
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to append status log for id=%s: %v", id, err)
	}
}
