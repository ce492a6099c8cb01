package port

import (
	"context"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

type NotifierClient interface {
	NotifyReportIngested(ctx context.Context, message *domain.ReportIngestedMessage) error
}
