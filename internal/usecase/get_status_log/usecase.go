package get_status_log

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// UseCase чтение журнала смены статусов
type UseCase struct {
	repo   StatusLogRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case. repo может быть nil, тогда журнал выключен.
func NewUseCase(repo StatusLogRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute возвращает записи журнала, при необходимости по одному бронированию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if uc.repo == nil {
		return nil, ErrDisabled
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStatusLog: validation failed: %v", err)
		return nil, err
	}

	filter := domain.StatusLogFilter{
		Limit:  uint64(req.Limit),
		Offset: uint64(req.Offset),
	}
	if req.BookingRef != "" {
		ref := req.BookingRef
		filter.BookingRef = &ref
	}

	entries, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetStatusLog: failed to list entries: booking_ref=%s, error=%v", req.BookingRef, err)
		return nil, fmt.Errorf("%w: failed to list entries: %v", ErrInternal, err)
	}

	uc.logger.Info("GetStatusLog: booking_ref=%q, returned=%d", req.BookingRef, len(entries))
	return &Response{Entries: entries}, nil
}
