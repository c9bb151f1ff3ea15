package export_bookings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

const fileNameLayout = "bookings-2006-01-02.xlsx"

// UseCase выгрузка отфильтрованного списка сессии без пагинации
type UseCase struct {
	sessions SessionService
	bookings BookingsService
	write    WriteFunc
	now      func() time.Time
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionService, bookingsService BookingsService, write WriteFunc, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		bookings: bookingsService,
		write:    write,
		now:      time.Now,
		logger:   logger,
	}
}

// Execute применяет поиск и фильтр по дате из сессии и сериализует результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.SessionID == "" {
		return nil, ErrInvalidInput
	}

	sess, err := uc.sessions.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ExportBookings: failed to load session: %v", err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	snapshot := uc.bookings.Snapshot()
	filtered := bookings.Filter(snapshot.Bookings, sess.View.Search, sess.View.DateFilter)

	var buf bytes.Buffer
	if err := uc.write(&buf, filtered); err != nil {
		uc.logger.Error("ExportBookings: failed to write workbook: %v", err)
		return nil, fmt.Errorf("%w: failed to write workbook: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportBookings: user=%d, exported=%d of %d", sess.User.ID, len(filtered), len(snapshot.Bookings))

	return &Response{
		FileName: uc.now().UTC().Format(fileNameLayout),
		Content:  buf.Bytes(),
		Count:    len(filtered),
	}, nil
}

