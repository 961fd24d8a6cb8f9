package rabbitmq

import (
	"encoding/json"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"margin-system/domain/constants"
	"margin-system/utils/configs"
	"margin-system/utils/gpooling"
)

type options struct {
	Uri        string
	AutoAck    bool
	AutoDelete bool
	Durable    bool
	Exclusive  bool
	NoWait     bool
}

func NewOptions() *options {
	return &options{}
}

func (o *options) WithUri(uri string) *options {
	o.Uri = uri
	return o
}

func (o *options) WithAutoAck(ack bool) *options {
	o.AutoAck = ack
	return o
}

type RabbiMQ struct {
	Connection *amqp.Connection
	IPool      gpooling.IPool
	options
	configs.Config
	*zap.Logger
}

func NewRabbiMQ(o options, conf configs.Config, log *zap.Logger, pool gpooling.IPool) (*RabbiMQ, error) {
	conn, err := amqp.Dial(o.Uri)

	if err != nil {
		panic(err)
	}

	return &RabbiMQ{
		IPool:      pool,
		Connection: conn,
		options:    o,
		Config:     conf,
		Logger:     log,
	}, nil
}

type notificationJob struct {
	TemplateId string                 `json:"template_id"`
	Payload    map[string]interface{} `json:"payload"`
}

// Enqueue hands a notification job to the external dispatcher. Delivery and
// retries are the dispatcher's problem; a publish failure is logged and
// returned, never propagated into business state.
func (r *RabbiMQ) Enqueue(templateId string, payload map[string]interface{}) error {
	ch, err := r.Connection.Channel()

	if err != nil {
		return err
	}
	defer ch.Close()

	send_data, err := json.Marshal(notificationJob{
		TemplateId: templateId,
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	err = ch.Publish(
		constants.ExchangeNotificationJobs, // exchange
		templateId,                         // routing key
		false,                              // mandatory
		false,                              // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        send_data,
		})

	if err != nil {
		r.Logger.With(zapcore.Field{
			Key:       "err-notification-" + templateId,
			Type:      zapcore.ReflectType,
			Interface: err,
		}).Error("NOTIFICATION_ENQUEUE")
	}

	return err
}
