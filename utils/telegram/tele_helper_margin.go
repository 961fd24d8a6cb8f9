package telegram

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/leekchan/accounting"
	"margin-system/domain/entities"
	"margin-system/domain/value_objects"
	"margin-system/utils/helpers"
)

var moneyFormat = accounting.DefaultAccounting("", 2)

func SendMarginRefundApplied(merchant entities.Merchant, result value_objects.ApplyResult) string {
	return fmt.Sprintf(`
MARGIN REFUND APPLICATION
Merchant: %v (%v)
Batch: %v
Online total: %v
Offline total: %v
Records: %v
Time: %v
`,
		merchant.Name,
		merchant.Id,
		result.BatchId,
		moneyFormat.FormatMoneyDecimal(result.Plan.OnlineTotal),
		moneyFormat.FormatMoneyDecimal(result.Plan.OfflineTotal),
		len(result.Records),
		helpers.GetCurrentTime().Format("02-01-2006 15:04:05"),
	)
}

func SendMarginAuditDecision(record entities.FinancialRecord, finalized bool) string {
	extra := ""
	if record.AuditStatus == entities.AUDIT_REJECTED {
		extra = "Reason: " + record.RejectReason
	}
	if finalized {
		extra = "Merchant finalized"
	}

	return fmt.Sprintf(`
MARGIN REFUND AUDIT
Record: %v
Merchant: %v
Channel: %v
Amount: %v
Decision: %v
Applied: %v
%v
`,
		record.Id,
		record.MerchantId,
		record.Channel,
		moneyFormat.FormatMoneyDecimal(record.Amount),
		record.AuditStatus.StatusString(),
		humanize.Time(record.CreatedAt.In(helpers.LocationVietNam())),
		extra,
	)
}
