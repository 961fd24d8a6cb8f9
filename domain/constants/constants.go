package constants

const (
	SERVICE_BANKGW_ERROR       = "SERVICE_BANKGW_ERROR"
	SERVICE_MERCHANT_ERROR     = "SERVICE_MERCHANT_ERROR"
	SERVICE_RECORD_ERROR       = "SERVICE_RECORD_ERROR"
	SERVICE_LEDGER_ERROR       = "SERVICE_LEDGER_ERROR"
	SERVICE_NOTIFICATION_ERROR = "SERVICE_NOTIFICATION_ERROR"
	SERVICE_TIER_ERROR         = "SERVICE_TIER_ERROR"
)

// Online refund channels inherited from the funding order. OFFLINE_SYSTEM is
// the sentinel channel for the manually transferred remainder.
const (
	CHANNEL_WECHAT         = "WECHAT"
	CHANNEL_ALIPAY         = "ALIPAY"
	CHANNEL_BANK           = "BANK"
	CHANNEL_OFFLINE_SYSTEM = "OFFLINE_SYSTEM"
)

// Ledger
const (
	LEDGER_CATEGORY_MARGIN = "mer_margin"

	LEDGER_DIRECTION_OUT = -1
	LEDGER_DIRECTION_IN  = 1
)

// Notification template ids consumed by the external dispatcher.
const (
	TEMPLATE_MARGIN_REFUND_APPLIED  = "margin_refund_applied"
	TEMPLATE_MARGIN_REFUND_APPROVED = "margin_refund_approved"
	TEMPLATE_MARGIN_REFUND_REJECTED = "margin_refund_rejected"
	TEMPLATE_MERCHANT_STATUS_CHANGE = "merchant_status_change"
)
