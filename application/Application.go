package application

import (
	"context"

	"go.uber.org/zap"
	"margin-system/domain/repositories"
	"margin-system/infrastructure/database_mgo"
	"margin-system/infrastructure/database_mgo/deposit_order"
	"margin-system/infrastructure/database_mgo/financial_record"
	"margin-system/infrastructure/database_mgo/ledger"
	"margin-system/infrastructure/database_mgo/merchant"
	"margin-system/infrastructure/database_mgo/tier_config"
	"margin-system/infrastructure/kafka"
	"margin-system/infrastructure/mqtt"
	"margin-system/infrastructure/rabbitmq"
	"margin-system/infrastructure/service/bank_service"
	"margin-system/utils/configs"
	"margin-system/utils/gpooling"
	"margin-system/utils/locking"
)

// MarginApplication owns the margin refund lifecycle: the allocation engine,
// the per-record audit state machine and their side effects. Collaborators
// are injected so every one of them can be mocked in tests.
type MarginApplication struct {
	Config           *configs.Config
	Logger           *zap.Logger
	IPool            gpooling.IPool
	MerchantLock     *locking.KeyedMutex
	MerchantRepo     repositories.MerchantRepository
	DepositOrderRepo repositories.DepositOrderRepository
	RecordRepo       repositories.FinancialRecordRepository
	LedgerRepo       repositories.LedgerRepository
	TierRepo         repositories.TierConfigRepository
	BankServiceRepo  repositories.BankServiceRepository
	Notification     repositories.INotification
	MQTT             repositories.IMqtt
	KafkaConnection  kafka.Storage
	hasKafka         bool
}

func NewMarginApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *MarginApplication {
	opts := rabbitmq.NewOptions().WithUri(config.QueueUri)

	queue, _ := rabbitmq.NewRabbiMQ(*opts, *config, logger, pool)
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	mqttClient := mqtt.Connection(config.MQTTInternalUri.Uri, config.MQTTInternalUri.Username, config.MQTTInternalUri.Password)

	application := &MarginApplication{
		Config:           config,
		Logger:           logger,
		IPool:            pool,
		MerchantLock:     locking.NewKeyedMutex(),
		MerchantRepo:     merchant.NewMerchantCollectionImpl(db, config),
		DepositOrderRepo: deposit_order.NewDepositOrderCollectionImpl(db, config),
		RecordRepo:       financial_record.NewFinancialRecordCollectionImpl(db, config),
		LedgerRepo:       ledger.NewLedgerCollectionImpl(db, config),
		TierRepo:         tier_config.NewTierConfigRepository(db, config),
		BankServiceRepo:  bank_service.NewRepoImpl(config.BankGwURI, config.BankGwClientCode, logger),
		Notification:     queue,
		MQTT:             mqtt.NewMQTTRepositoryImpl(mqttClient, logger),
	}

	if config.KafkaConfig.Brokers != "" {
		kafkaConn, err := kafka.NewConnection(context.Background(), config.KafkaConfig.Zookeepers, config.KafkaConfig.Brokers)
		if err == nil {
			application.KafkaConnection = kafkaConn
			application.hasKafka = true
		}
	}

	return application
}
