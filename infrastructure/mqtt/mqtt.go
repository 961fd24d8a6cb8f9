package mqtt

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

func Connection(uri, user, password string) mqtt.Client {

	opts := mqtt.NewClientOptions().AddBroker(uri)
	opts.SetUsername(user)
	opts.SetPassword(password)
	opts.SetClientID(fmt.Sprint(time.Now().Add(time.Hour * 7).Unix()))

	client_mqtt := mqtt.NewClient(opts)

	if token := client_mqtt.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}

	return client_mqtt
}

type repositoryImpl struct {
	client mqtt.Client
	zap.Logger
}

func NewMQTTRepositoryImpl(client mqtt.Client, logger *zap.Logger) *repositoryImpl {
	return &repositoryImpl{client, *logger}
}

func (r repositoryImpl) Publish(topic, message string, retain bool, prefix string) (err error) {
	publish := r.client.Publish(prefix+"/topic/"+topic+"/", byte(2), retain, message)
	if publish.Error() != nil {
		r.Logger.With(zap.Any("message", message)).
			With(zap.Any("topic", topic)).
			Error("MQTT_PUBLISH")
		err = publish.Error()
	}

	return err
}
