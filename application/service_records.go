package application

import (
	"context"

	"margin-system/domain/entities"
)

// ListRecords returns a merchant's financial records, optionally only the
// outstanding PENDING ones. This is the operator's way to inspect a merchant
// stuck in REFUND_PENDING.
func (us *MarginApplication) ListRecords(ctx context.Context, merchantId string, onlyPending bool) ([]*entities.FinancialRecord, error) {
	return us.RecordRepo.ListByMerchant(ctx, merchantId, onlyPending)
}

// ListLedger returns the most recent margin bill entries for a merchant.
func (us *MarginApplication) ListLedger(ctx context.Context, merchantId string, limit int64) ([]*entities.LedgerEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return us.LedgerRepo.ListByMerchant(ctx, merchantId, limit)
}
