package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Prefix            string            `json:"prefix" mapstructure:"prefix"`
	Port              string            `json:"port" mapstructure:"port"`
	ENV               string            `json:"env" mapstructure:"env"`
	MaxPoolSize       int               `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI          string            `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDBName       string            `json:"mongo_db_name" mapstructure:"mongo_db_name"`
	QueueUri          string            `json:"queue_uri" mapstructure:"queue_uri"`
	KafkaConfig       Kafka             `json:"kafka_config" mapstructure:"kafka_config"`
	MQTTInternalUri   MQTTInternalUri   `json:"mqtt_internal_uri" mapstructure:"mqtt_internal_uri"`
	BankGwURI         string            `json:"bank_gw_uri" mapstructure:"bank_gw_uri"`
	BankGwClientCode  string            `json:"bank_gw_client_code" mapstructure:"bank_gw_client_code"`
	TelegramChannelId TelegramChannelId `json:"telegram_channel_id" mapstructure:"telegram_channel_id"`
	TelegramBotToken  string            `json:"telegram_bot_token" mapstructure:"telegram_bot_token"`
	Compat            Compat            `json:"compat" mapstructure:"compat"`
}

type MQTTInternalUri struct {
	Uri      string `json:"uri" mapstructure:"uri"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
}

type TelegramChannelId struct {
	MarginRefund int64 `json:"margin_refund" mapstructure:"margin_refund"`
	MarginAudit  int64 `json:"margin_audit" mapstructure:"margin_audit"`
}

type Kafka struct {
	Zookeepers string `json:"zookeepers" mapstructure:"zookeepers"`
	Brokers    string `json:"brokers" mapstructure:"brokers"`
	Partitions int    `mapstructure:"partitions"`
	Replicas   int    `mapstructure:"replicas"`
}

// Compat keeps switchable behaviours of the legacy back office.
type Compat struct {
	// LegacyAllocation replays the old slice formula that charges the full
	// margin on the covering order instead of the running remainder.
	LegacyAllocation bool `json:"legacy_allocation" mapstructure:"legacy_allocation"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
