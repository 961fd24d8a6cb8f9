package test

import (
	"margin-system/application"
	"margin-system/domain/repositories/mocks"
	"margin-system/utils/configs"
	"margin-system/utils/locking"
	logger2 "margin-system/utils/logger"
)

type MockService struct {
	Config            *configs.Config
	MarginApplication *application.MarginApplication
	Merchant          *mocks.MerchantRepository
	DepositOrder      *mocks.DepositOrderRepository
	Record            *mocks.FinancialRecordRepository
	Ledger            *mocks.LedgerRepository
	Tier              *mocks.TierConfigRepository
	BankService       *mocks.BankServiceRepository
	Notification      *mocks.INotification
	Mqtt              *mocks.IMqtt
}

// syncPool runs submitted tasks inline so tests can assert on side effects
// without sleeping.
type syncPool struct{}

func (syncPool) Submit(task func()) { task() }
func (syncPool) Release()           {}
func (syncPool) Running() int       { return 0 }

func NewTestMarginApplication() *MockService {
	config, err := configs.LoadTestConfig("../../")

	if err != nil {
		panic(err)
	}

	logger, err := logger2.NewLogger("production")

	if err != nil {
		panic(err)
	}

	merchantRepo := &mocks.MerchantRepository{}
	depositOrderRepo := &mocks.DepositOrderRepository{}
	recordRepo := &mocks.FinancialRecordRepository{}
	ledgerRepo := &mocks.LedgerRepository{}
	tierRepo := &mocks.TierConfigRepository{}
	bankService := &mocks.BankServiceRepository{}
	notification := &mocks.INotification{}
	mqttMock := &mocks.IMqtt{}

	return &MockService{
		Config: config,
		MarginApplication: &application.MarginApplication{
			Config:           config,
			Logger:           logger,
			IPool:            syncPool{},
			MerchantLock:     locking.NewKeyedMutex(),
			MerchantRepo:     merchantRepo,
			DepositOrderRepo: depositOrderRepo,
			RecordRepo:       recordRepo,
			LedgerRepo:       ledgerRepo,
			TierRepo:         tierRepo,
			BankServiceRepo:  bankService,
			Notification:     notification,
			MQTT:             mqttMock,
		},
		Merchant:     merchantRepo,
		DepositOrder: depositOrderRepo,
		Record:       recordRepo,
		Ledger:       ledgerRepo,
		Tier:         tierRepo,
		BankService:  bankService,
		Notification: notification,
		Mqtt:         mqttMock,
	}
}
