package companions

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

// CMSClient галерея компаньонов и тексты панели в CMS
type CMSClient interface {
	ListCompanions(ctx context.Context, q cms.CompanionsQuery) (*cms.CompanionList, error)
	GetCompanion(ctx context.Context, documentID, locale string) (*cms.Companion, error)
	LikeCompanion(ctx context.Context, documentID string) (json.RawMessage, error)
	GetCompanionAvailability(ctx context.Context, eventTypeID string) *cms.Availability
	GetPanelTexts(ctx context.Context, locale string) (*cms.PanelTexts, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
