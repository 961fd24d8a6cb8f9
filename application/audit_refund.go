package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	"margin-system/domain/request_params"
	"margin-system/domain/value_objects"
	utils_errors "margin-system/utils/errors"
	"margin-system/utils/helpers"
)

// Audit processes one approve/reject decision on a financial record. The
// decision is terminal: a record leaves PENDING exactly once. All audits of
// the same merchant serialize on the merchant key so the sibling count and
// the finalize decision cannot interleave.
func (us *MarginApplication) Audit(ctx context.Context, request request_params.AuditRefundReq) (*value_objects.AuditResult, error) {
	record, err := us.RecordRepo.FindById(ctx, request.RecordId)
	if err != nil {
		return nil, err
	}

	if record.AuditStatus.IsTerminal() {
		return nil, utils_errors.ErrAlreadyAudited
	}

	us.MerchantLock.Lock(record.MerchantId)
	defer us.MerchantLock.Unlock(record.MerchantId)

	// Re-read under the lock; a sibling audit may have landed meanwhile.
	record, err = us.RecordRepo.FindById(ctx, request.RecordId)
	if err != nil {
		return nil, err
	}
	if record.AuditStatus.IsTerminal() {
		return nil, utils_errors.ErrAlreadyAudited
	}

	switch request.Decision {
	case request_params.DECISION_APPROVE:
		return us.approve(ctx, record, request)
	case request_params.DECISION_REJECT:
		return us.reject(ctx, record, request)
	}

	return nil, fmt.Errorf("unknown audit decision %q", request.Decision)
}

func (us *MarginApplication) approve(ctx context.Context, record *entities.FinancialRecord, request request_params.AuditRefundReq) (*value_objects.AuditResult, error) {
	if record.IsOnline() {
		snapshot := record.TargetSnapshot

		if snapshot.RefundAmount.GreaterThan(snapshot.PaidAmount) {
			us.Logger.With(
				zap.String("record_id", record.Id),
				zap.String("refund_amount", snapshot.RefundAmount.String()),
				zap.String("paid_amount", snapshot.PaidAmount.String()),
			).Error(constants.SERVICE_RECORD_ERROR + "_exceeds_capture")
			return nil, utils_errors.ErrRefundExceedsCapture
		}

		// A gateway failure leaves the record PENDING; the same audit call
		// is retried later and the order reference keeps the retry
		// idempotent on the gateway side.
		if _, err := us.BankServiceRepo.ReFund(snapshot.OrderRef, snapshot.RefundAmount); err != nil {
			us.Logger.With(zap.String("order_ref", snapshot.OrderRef), zap.Error(err)).Error(constants.SERVICE_BANKGW_ERROR + "_refund")
			return nil, err
		}

		if err := us.DepositOrderRepo.MarkRefunded(ctx, snapshot.OrderRef); err != nil {
			us.Logger.With(zap.String("order_ref", snapshot.OrderRef), zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_mark_refunded")
		}
	}

	pending, err := us.RecordRepo.CountPending(ctx, record.MerchantId, record.BatchId, record.Id)
	if err != nil {
		return nil, err
	}

	finalized := false
	var tier entities.TierConfig

	if pending == 0 {
		merchant, err := us.MerchantRepo.FindById(ctx, record.MerchantId)
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR)
			return nil, err
		}

		tier, err = us.TierRepo.GetTierConfig(ctx, merchant.TierCode)
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_TIER_ERROR)
			return nil, err
		}

		finalized, err = us.MerchantRepo.FinalizeRefund(ctx, record.MerchantId, tier)
		if err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_finalize")
			return nil, err
		}
	}

	// The balance already left the merchant at apply time, so the approved
	// entry carries amount zero.
	ledgerErr := us.LedgerRepo.Append(ctx, &entities.LedgerEntry{
		MerchantId: record.MerchantId,
		Category:   constants.LEDGER_CATEGORY_MARGIN,
		Amount:     decimal.Zero,
		Direction:  constants.LEDGER_DIRECTION_OUT,
		Note:       fmt.Sprintf("margin refund approved, record %v", record.Id),
	})
	if ledgerErr != nil {
		us.Logger.With(zap.String("record_id", record.Id), zap.Error(ledgerErr)).Error(constants.SERVICE_LEDGER_ERROR)
	}

	now := helpers.GetCurrentTime()
	record.AuditStatus = entities.AUDIT_APPROVED
	record.SettlementStatus = entities.SETTLEMENT_TRANSFERRED
	record.AdminNote = request.AdminNote
	record.AuditedByAdmin = request.AdminId
	record.AuditedAt = &now

	won, err := us.RecordRepo.UpdateAudit(ctx, record)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, utils_errors.ErrAlreadyAudited
	}

	us.notifyAudit(*record, finalized, tier)

	return &value_objects.AuditResult{Record: record, Finalized: finalized}, nil
}

func (us *MarginApplication) reject(ctx context.Context, record *entities.FinancialRecord, request request_params.AuditRefundReq) (*value_objects.AuditResult, error) {
	// Credit the slice back before the record turns terminal: a transient
	// restore failure leaves the record PENDING, so the same reject can be
	// retried. The restore is keyed by record id, so a retry that already
	// credited is a no-op and nothing is restored twice.
	//
	// The lock goes back to ACTIVE even when siblings are still pending.
	// Deliberate fail-fast carried over from the old back office: one
	// rejection means the merchant keeps a deposit again.
	if err := us.MerchantRepo.RestoreMargin(ctx, record.MerchantId, record.Id, record.Amount); err != nil {
		us.Logger.With(zap.String("record_id", record.Id), zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_restore")
		return nil, err
	}

	ledgerErr := us.LedgerRepo.Append(ctx, &entities.LedgerEntry{
		MerchantId: record.MerchantId,
		Category:   constants.LEDGER_CATEGORY_MARGIN,
		Amount:     record.Amount,
		Direction:  constants.LEDGER_DIRECTION_IN,
		Note:       fmt.Sprintf("margin refund rejected, record %v: %v", record.Id, request.Reason),
	})
	if ledgerErr != nil {
		us.Logger.With(zap.String("record_id", record.Id), zap.Error(ledgerErr)).Error(constants.SERVICE_LEDGER_ERROR)
	}

	now := helpers.GetCurrentTime()
	record.AuditStatus = entities.AUDIT_REJECTED
	record.RejectReason = request.Reason
	record.AdminNote = request.AdminNote
	record.AuditedByAdmin = request.AdminId
	record.AuditedAt = &now

	won, err := us.RecordRepo.UpdateAudit(ctx, record)
	if err != nil {
		return nil, err
	}
	if !won {
		// A rival decision landed first. The keyed restore above means this
		// path cannot have credited a second time.
		return nil, utils_errors.ErrAlreadyAudited
	}

	us.notifyAudit(*record, false, entities.TierConfig{})

	return &value_objects.AuditResult{Record: record, Finalized: false}, nil
}
