package application

import (
	"go.uber.org/zap"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	"margin-system/domain/value_objects"
	"margin-system/utils/telegram"
)

// Side effects ride the goroutine pool: their latency or failure must never
// roll back a committed apply or audit decision.

func (us *MarginApplication) notifyApplied(merchant entities.Merchant, result value_objects.ApplyResult) {
	us.IPool.Submit(func() {
		err := us.Notification.Enqueue(constants.TEMPLATE_MARGIN_REFUND_APPLIED, map[string]interface{}{
			"merchant_id":   merchant.Id,
			"batch_id":      result.BatchId,
			"online_total":  result.Plan.OnlineTotal.String(),
			"offline_total": result.Plan.OfflineTotal.String(),
			"record_count":  len(result.Records),
		})
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR)
		}

		if us.Config.TelegramBotToken != "" {
			content := telegram.SendMarginRefundApplied(merchant, result)
			telegram.SendTelegram(us.Config.TelegramBotToken, content, us.Config.TelegramChannelId.MarginRefund)
		}

		us.publishAuditEvent("margin_refund_applied", merchant.Id, map[string]interface{}{
			"batch_id":     result.BatchId,
			"online_total": result.Plan.OnlineTotal.String(),
			"record_count": len(result.Records),
		})
	})
}

func (us *MarginApplication) notifyAudit(record entities.FinancialRecord, finalized bool, tier entities.TierConfig) {
	us.IPool.Submit(func() {
		templateId := constants.TEMPLATE_MARGIN_REFUND_APPROVED
		if record.AuditStatus == entities.AUDIT_REJECTED {
			templateId = constants.TEMPLATE_MARGIN_REFUND_REJECTED
		}

		err := us.Notification.Enqueue(templateId, map[string]interface{}{
			"merchant_id":   record.MerchantId,
			"record_id":     record.Id,
			"amount":        record.Amount.String(),
			"channel":       record.Channel,
			"reject_reason": record.RejectReason,
		})
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR)
		}

		if finalized && tier.RequiresMargin() {
			us.notifyMerchantStatusChanged(record.MerchantId)
		}

		if us.Config.TelegramBotToken != "" {
			content := telegram.SendMarginAuditDecision(record, finalized)
			telegram.SendTelegram(us.Config.TelegramBotToken, content, us.Config.TelegramChannelId.MarginAudit)
		}

		us.publishAuditEvent("margin_refund_audited", record.MerchantId, map[string]interface{}{
			"record_id":    record.Id,
			"audit_status": record.AuditStatus.StatusString(),
			"finalized":    finalized,
		})
	})
}

// notifyMerchantStatusChanged announces the forced storefront close after a
// finalize that still requires a deposit on the merchant's tier.
func (us *MarginApplication) notifyMerchantStatusChanged(merchantId string) {
	err := us.Notification.Enqueue(constants.TEMPLATE_MERCHANT_STATUS_CHANGE, map[string]interface{}{
		"merchant_id":  merchantId,
		"store_status": entities.STORE_CLOSED,
	})
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR)
	}

	if us.MQTT != nil {
		err = us.MQTT.Publish(constants.UPDATE_MERCHANT_STATUS, merchantId, false, us.Config.MQTTInternalUri.Prefix)
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR + "_mqtt")
		}
	}
}
