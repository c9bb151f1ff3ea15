package get_dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

// UseCase выборка дашборда для сессии: поиск, фильтр по дате, страница, статистика
type UseCase struct {
	sessions      SessionService
	bookings      BookingsService
	notifications NotificationSource
	pageSize      int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionService,
	bookingsService BookingsService,
	notifications NotificationSource,
	pageSize int,
	logger Logger,
) *UseCase {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &UseCase{
		sessions:      sessions,
		bookings:      bookingsService,
		notifications: notifications,
		pageSize:      pageSize,
		logger:        logger,
	}
}

// Execute применяет переходы состояния (поиск, затем фильтр, затем страница),
// фиксирует поколение списка, фильтрует и режет на страницы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDashboard: validation failed: %v", err)
		return nil, err
	}

	// 2. Состояние дашборда из сессии
	sess, err := uc.sessions.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetDashboard: failed to load session: %v", err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	// 3. Переходы состояния
	snapshot := uc.bookings.Snapshot()
	view := sess.View.Observe(snapshot.Generation)
	if req.Search != nil {
		view = view.SetSearch(*req.Search)
	}
	if req.DateFilter != nil {
		view = view.SetDateFilter(*req.DateFilter)
	}
	if req.Page != nil {
		view = view.SetPage(*req.Page)
	}

	// 4. Фильтрация и пагинация
	filtered := bookings.Filter(snapshot.Bookings, view.Search, view.DateFilter)
	page := bookings.Paginate(filtered, view.Page, uc.pageSize)
	view.Page = page.Page

	// 5. Сохраняем состояние
	if view != sess.View {
		if err := uc.sessions.SaveView(ctx, req.SessionID, view); err != nil {
			uc.logger.Error("GetDashboard: failed to save view state: %v", err)
			return nil, fmt.Errorf("%w: failed to save view state: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GetDashboard: user=%d, search=%q, page=%d/%d, matched=%d of %d",
		sess.User.ID, view.Search, page.Page, page.PageCount, page.Total, len(snapshot.Bookings))

	return &Response{
		Bookings: page.Items,
		Pagination: Pagination{
			Page:      page.Page,
			PageCount: page.PageCount,
			PageSize:  page.PageSize,
			Total:     page.Total,
			Window:    bookings.PageWindow(page.Page, page.PageCount),
		},
		View:         view,
		Stats:        uc.bookings.Stats(snapshot.Bookings),
		Notification: uc.notifications.Current(),
	}, nil
}
