package companions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

const maxPageSize = 100

// Service публичная галерея компаньонов поверх CMS
type Service struct {
	cms    CMSClient
	logger Logger
}

// NewService создает сервис галереи
func NewService(cmsClient CMSClient, logger Logger) *Service {
	return &Service{
		cms:    cmsClient,
		logger: logger,
	}
}

// List страница компаньонов: по убыванию лайков, только с фото
func (s *Service) List(ctx context.Context, locale string, page, pageSize int) (*cms.CompanionList, error) {
	if page < 0 || pageSize < 0 || pageSize > maxPageSize {
		return nil, fmt.Errorf("%w: page=%d, pageSize=%d", ErrInvalidInput, page, pageSize)
	}

	list, err := s.cms.ListCompanions(ctx, cms.CompanionsQuery{
		Locale:    locale,
		Page:      page,
		PageSize:  pageSize,
		WithImage: true,
	})
	if err != nil {
		return nil, s.mapError("List", err)
	}

	return list, nil
}

// Get профиль компаньона по documentId
func (s *Service) Get(ctx context.Context, documentID, locale string) (*cms.Companion, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, fmt.Errorf("%w: documentId is required", ErrInvalidInput)
	}

	companion, err := s.cms.GetCompanion(ctx, documentID, locale)
	if err != nil {
		return nil, s.mapError("Get", err)
	}

	return companion, nil
}

// Like добавляет лайк, возвращает обновленную запись CMS
func (s *Service) Like(ctx context.Context, documentID string) (json.RawMessage, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, fmt.Errorf("%w: documentId is required", ErrInvalidInput)
	}

	raw, err := s.cms.LikeCompanion(ctx, documentID)
	if err != nil {
		return nil, s.mapError("Like", err)
	}

	s.logger.Info("Like: companion=%s", documentID)
	return raw, nil
}

// Availability слоты компаньона; ошибки CMS превращаются в пустой список
func (s *Service) Availability(ctx context.Context, eventTypeID string) json.RawMessage {
	availability := s.cms.GetCompanionAvailability(ctx, eventTypeID)
	if availability == nil || len(availability.Slots) == 0 || string(availability.Slots) == "null" {
		return json.RawMessage("[]")
	}
	return availability.Slots
}

// PanelTexts тексты админ-панели
func (s *Service) PanelTexts(ctx context.Context, locale string) (*cms.PanelTexts, error) {
	texts, err := s.cms.GetPanelTexts(ctx, locale)
	if err != nil {
		return nil, s.mapError("PanelTexts", err)
	}
	return texts, nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, cms.ErrNotFound):
		return fmt.Errorf("%w: %s - %v", ErrNotFound, op, err)
	case errors.Is(err, cms.ErrBadRequest):
		return fmt.Errorf("%w: %s - %v", ErrInvalidInput, op, err)
	default:
		s.logger.Error("%s: cms error: %v", op, err)
		return fmt.Errorf("%w: %s - %v", ErrUpstream, op, err)
	}
}
