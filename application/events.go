package application

import (
	"go.uber.org/zap"
	"margin-system/domain/constants"
	"margin-system/utils/helpers"
)

type auditEvent struct {
	EventType  string                 `json:"event_type"`
	MerchantId string                 `json:"merchant_id"`
	OccurredAt string                 `json:"occurred_at"`
	Detail     map[string]interface{} `json:"detail"`
}

// publishAuditEvent emits one event per apply/audit decision onto the margin
// audit stream for downstream accounting. Best effort.
func (us *MarginApplication) publishAuditEvent(eventType, merchantId string, detail map[string]interface{}) {
	if !us.hasKafka {
		return
	}

	err := us.KafkaConnection.EnsureTopic(constants.TopicMarginAuditEvents, us.Config.KafkaConfig.Partitions, us.Config.KafkaConfig.Replicas)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR + "_kafka_topic")
		return
	}

	err = us.KafkaConnection.PublishEvent(constants.TopicMarginAuditEvents, merchantId, auditEvent{
		EventType:  eventType,
		MerchantId: merchantId,
		OccurredAt: helpers.GetCurrentTime().Format("2006-01-02T15:04:05Z07:00"),
		Detail:     detail,
	})
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_NOTIFICATION_ERROR + "_kafka")
	}
}
