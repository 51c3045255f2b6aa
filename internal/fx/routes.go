package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/domain/dashboard"
	"github.com/alternativafozthiago/financas/internal/domain/report"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/middleware"
	"github.com/alternativafozthiago/financas/internal/routes"
	"github.com/alternativafozthiago/financas/internal/session"
)

// RoutesModule fornece o handler e o rate limiter global
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	contactSvc *contact.Service,
	transactionSvc *transaction.Service,
	dashboardSvc *dashboard.Service,
	reportSvc *report.Service,
	sessions *session.Manager,
) *routes.Handler {
	return &routes.Handler{
		ContactService:     contactSvc,
		TransactionService: transactionSvc,
		DashboardService:   dashboardSvc,
		ReportService:      reportSvc,
		Sessions:           sessions,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
