package constants

// Kafka topics
const (
	TopicMarginAuditEvents = "margin_audit_events"
)

// MQTT topics
const (
	UPDATE_MERCHANT_STATUS = "update_merchant_status"
)

// RabbitMQ exchanges
const (
	ExchangeNotificationJobs = "notification_jobs"
)
