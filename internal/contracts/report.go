package contracts

import "github.com/alternativafozthiago/financas/internal/domain/report"

type ReportResponse struct {
	Report *report.Report `json:"report"`
}
