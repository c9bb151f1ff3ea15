package get_panel_texts

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

type CompanionsService interface {
	PanelTexts(ctx context.Context, locale string) (*cms.PanelTexts, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
