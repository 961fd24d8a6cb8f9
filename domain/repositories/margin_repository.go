package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"margin-system/domain/entities"
	eBankGw "margin-system/domain/entities/bank_gateway"
)

type MerchantRepository interface {
	FindById(ctx context.Context, merchantId string) (*entities.Merchant, error)

	// AcquireRefundLock performs the apply-time mutation as one conditional
	// update: margin > 0 and a refundable status are part of the filter, the
	// update zeroes the margin and sets MARGIN_REFUND_PENDING. Returns the
	// pre-image so a failed batch insert can be compensated. A zero matched
	// count surfaces as ErrDuplicateApplication.
	AcquireRefundLock(ctx context.Context, merchantId string) (*entities.Merchant, error)

	// ReleaseRefundLock restores a pre-image captured by AcquireRefundLock.
	// Compensation only.
	ReleaseRefundLock(ctx context.Context, merchantId string, margin decimal.Decimal, status entities.MarginStatus) error

	// RestoreMargin credits a rejected slice back and unconditionally
	// re-activates the deposit lock. Keyed by record id: restoring the same
	// record twice is a no-op, so a retried rejection cannot double-credit.
	RestoreMargin(ctx context.Context, merchantId, recordId string, amount decimal.Decimal) error

	// FinalizeRefund resets the deposit state to the tier requirement,
	// guarded on the lock still being MARGIN_REFUND_PENDING. Reports whether
	// this call was the one that finalized.
	FinalizeRefund(ctx context.Context, merchantId string, tier entities.TierConfig) (bool, error)
}

type DepositOrderRepository interface {
	// FindRefundableByMerchant returns the paid, online funded deposit
	// orders in ascending order_id order so allocation stays deterministic.
	FindRefundableByMerchant(ctx context.Context, merchantId string) ([]entities.DepositOrder, error)

	MarkRefunded(ctx context.Context, orderRef string) error
}

type FinancialRecordRepository interface {
	InsertBatch(ctx context.Context, records []*entities.FinancialRecord) error
	FindById(ctx context.Context, recordId string) (*entities.FinancialRecord, error)
	ListByMerchant(ctx context.Context, merchantId string, onlyPending bool) ([]*entities.FinancialRecord, error)

	// CountPending counts PENDING siblings of a batch, excluding the record
	// currently under audit.
	CountPending(ctx context.Context, merchantId, batchId, excludeId string) (int64, error)

	// UpdateAudit commits the terminal audit decision, guarded on the record
	// still being PENDING. Reports whether the update won.
	UpdateAudit(ctx context.Context, record *entities.FinancialRecord) (bool, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, entry *entities.LedgerEntry) error
	ListByMerchant(ctx context.Context, merchantId string, limit int64) ([]*entities.LedgerEntry, error)
}

type TierConfigRepository interface {
	GetTierConfig(ctx context.Context, tierCode string) (entities.TierConfig, error)
}

type BankServiceRepository interface {
	ReFund(orderRef string, amount decimal.Decimal) (eBankGw.RefundRes, error)
}

type INotification interface {
	Enqueue(templateId string, payload map[string]interface{}) error
}

type IMqtt interface {
	Publish(topic, message string, retain bool, prefix string) error
}
