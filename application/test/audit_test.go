package test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	eBankGw "margin-system/domain/entities/bank_gateway"
	"margin-system/domain/request_params"
	utils_errors "margin-system/utils/errors"
)

func onlineRecord(id string, refund, paid int64) *entities.FinancialRecord {
	return &entities.FinancialRecord{
		Id:               id,
		MerchantId:       "mer-1",
		BatchId:          "batch-1",
		Kind:             entities.KIND_MARGIN_REFUND,
		Amount:           decimal.NewFromInt(refund),
		AuditStatus:      entities.AUDIT_PENDING,
		SettlementStatus: entities.SETTLEMENT_NOT_TRANSFERRED,
		Channel:          constants.CHANNEL_WECHAT,
		TargetSnapshot: entities.TargetSnapshot{
			OrderRef:     "GW-0001",
			PaidAmount:   decimal.NewFromInt(paid),
			RefundAmount: decimal.NewFromInt(refund),
		},
		AppliedByAdmin: "adm-1",
	}
}

func offlineRecord(id string, amount int64) *entities.FinancialRecord {
	return &entities.FinancialRecord{
		Id:               id,
		MerchantId:       "mer-1",
		BatchId:          "batch-1",
		Kind:             entities.KIND_MARGIN_REFUND,
		Amount:           decimal.NewFromInt(amount),
		AuditStatus:      entities.AUDIT_PENDING,
		SettlementStatus: entities.SETTLEMENT_NOT_TRANSFERRED,
		Channel:          constants.CHANNEL_OFFLINE_SYSTEM,
		TargetSnapshot: entities.TargetSnapshot{
			PayeeType: "BANK",
			PayeeName: "NGUYEN VAN A",
			PayeeCode: "9704000011112222",
		},
		AppliedByAdmin: "adm-1",
	}
}

func TestMarginApplication_Audit(t *testing.T) {
	ctx := context.TODO()

	t.Run("record already audited", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := onlineRecord("rec-1", 300, 300)
		record.AuditStatus = entities.AUDIT_APPROVED
		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)

		_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
		})

		assert.ErrorIs(t, err, utils_errors.ErrAlreadyAudited)
		th.BankService.AssertNotCalled(t, "ReFund", mock.Anything, mock.Anything)
	})

	t.Run("approve online slice refunds through the gateway", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := onlineRecord("rec-1", 300, 300)
		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.BankService.On("ReFund", "GW-0001", mock.Anything).Return(eBankGw.RefundRes{ErrorCode: "200"}, nil)
		th.DepositOrder.On("MarkRefunded", mock.Anything, "GW-0001").Return(nil)
		th.Record.On("CountPending", mock.Anything, record.MerchantId, record.BatchId, record.Id).Return(int64(1), nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Record.On("UpdateAudit", mock.Anything, record).Return(true, nil)
		th.Notification.On("Enqueue", constants.TEMPLATE_MARGIN_REFUND_APPROVED, mock.Anything).Return(nil)

		result, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
		})

		assert.NoError(t, err)
		assert.False(t, result.Finalized)
		assert.Equal(t, entities.AUDIT_APPROVED, result.Record.AuditStatus)
		assert.Equal(t, entities.SETTLEMENT_TRANSFERRED, result.Record.SettlementStatus)
		assert.Equal(t, "adm-2", result.Record.AuditedByAdmin)
		assert.NotNil(t, result.Record.AuditedAt)
		th.Merchant.AssertNotCalled(t, "FinalizeRefund", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gateway failure leaves the record pending", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := onlineRecord("rec-1", 300, 300)
		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.BankService.On("ReFund", "GW-0001", mock.Anything).Return(eBankGw.RefundRes{}, errors.New("gateway timeout"))

		_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
		})

		assert.Error(t, err)
		assert.Equal(t, entities.AUDIT_PENDING, record.AuditStatus)
		th.Record.AssertNotCalled(t, "UpdateAudit", mock.Anything, mock.Anything)
	})

	t.Run("refund slice exceeds the captured payment", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := onlineRecord("rec-1", 400, 300)
		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)

		_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
		})

		assert.ErrorIs(t, err, utils_errors.ErrRefundExceedsCapture)
		th.BankService.AssertNotCalled(t, "ReFund", mock.Anything, mock.Anything)
	})

	t.Run("last approval finalizes the merchant", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := offlineRecord("rec-9", 50)
		merchant := merchantWithMargin(0)
		merchant.MarginStatus = entities.MARGIN_REFUND_PENDING
		tier := entities.TierConfig{TierCode: "GOLD", MarginRequired: decimal.NewFromInt(500)}

		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.Record.On("CountPending", mock.Anything, record.MerchantId, record.BatchId, record.Id).Return(int64(0), nil)
		th.Merchant.On("FindById", mock.Anything, record.MerchantId).Return(merchant, nil)
		th.Tier.On("GetTierConfig", mock.Anything, merchant.TierCode).Return(tier, nil)
		th.Merchant.On("FinalizeRefund", mock.Anything, record.MerchantId, tier).Return(true, nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Record.On("UpdateAudit", mock.Anything, record).Return(true, nil)
		th.Notification.On("Enqueue", mock.Anything, mock.Anything).Return(nil)
		th.Mqtt.On("Publish", constants.UPDATE_MERCHANT_STATUS, record.MerchantId, false, mock.Anything).Return(nil)

		result, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
		})

		assert.NoError(t, err)
		assert.True(t, result.Finalized)
		th.Notification.AssertCalled(t, "Enqueue", constants.TEMPLATE_MERCHANT_STATUS_CHANGE, mock.Anything)
		th.Mqtt.AssertCalled(t, "Publish", constants.UPDATE_MERCHANT_STATUS, record.MerchantId, false, mock.Anything)
	})

	t.Run("reject restores the margin and reactivates the lock", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := offlineRecord("rec-9", 200)

		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.Record.On("UpdateAudit", mock.Anything, record).Return(true, nil)
		th.Merchant.On("RestoreMargin", mock.Anything, record.MerchantId, record.Id, mock.Anything).Return(nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Notification.On("Enqueue", constants.TEMPLATE_MARGIN_REFUND_REJECTED, mock.Anything).Return(nil)

		result, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_REJECT, Reason: "payee mismatch",
		})

		assert.NoError(t, err)
		assert.False(t, result.Finalized)
		assert.Equal(t, entities.AUDIT_REJECTED, result.Record.AuditStatus)
		assert.Equal(t, "payee mismatch", result.Record.RejectReason)

		th.Merchant.AssertCalled(t, "RestoreMargin", mock.Anything, record.MerchantId, record.Id, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.NewFromInt(200))
		}))
		th.Ledger.AssertCalled(t, "Append", mock.Anything, mock.MatchedBy(func(entry *entities.LedgerEntry) bool {
			return entry.Direction == constants.LEDGER_DIRECTION_IN && entry.Amount.Equal(decimal.NewFromInt(200))
		}))
		th.BankService.AssertNotCalled(t, "ReFund", mock.Anything, mock.Anything)
	})

	t.Run("reject loses the record race", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := offlineRecord("rec-9", 200)

		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.Merchant.On("RestoreMargin", mock.Anything, record.MerchantId, record.Id, mock.Anything).Return(nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Record.On("UpdateAudit", mock.Anything, record).Return(false, nil)

		_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_REJECT, Reason: "payee mismatch",
		})

		assert.ErrorIs(t, err, utils_errors.ErrAlreadyAudited)
	})

	t.Run("transient restore failure leaves the record pending for retry", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := offlineRecord("rec-9", 200)

		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)
		th.Merchant.On("RestoreMargin", mock.Anything, record.MerchantId, record.Id, mock.Anything).Return(errors.New("connection reset")).Once()
		th.Merchant.On("RestoreMargin", mock.Anything, record.MerchantId, record.Id, mock.Anything).Return(nil)
		th.Record.On("UpdateAudit", mock.Anything, record).Return(true, nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Notification.On("Enqueue", constants.TEMPLATE_MARGIN_REFUND_REJECTED, mock.Anything).Return(nil)

		req := request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: request_params.DECISION_REJECT, Reason: "payee mismatch",
		}

		_, err := th.MarginApplication.Audit(ctx, req)
		assert.Error(t, err)
		assert.Equal(t, entities.AUDIT_PENDING, record.AuditStatus)
		th.Record.AssertNotCalled(t, "UpdateAudit", mock.Anything, mock.Anything)

		result, err := th.MarginApplication.Audit(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, entities.AUDIT_REJECTED, result.Record.AuditStatus)
		th.Merchant.AssertNumberOfCalls(t, "RestoreMargin", 2)
	})

	t.Run("concurrent sibling approvals finalize exactly once", func(t *testing.T) {
		th := NewTestMarginApplication()
		recA := offlineRecord("rec-a", 100)
		recB := offlineRecord("rec-b", 200)
		records := map[string]*entities.FinancialRecord{recA.Id: recB, recB.Id: recA}
		merchant := merchantWithMargin(0)
		merchant.MarginStatus = entities.MARGIN_REFUND_PENDING
		tier := entities.TierConfig{TierCode: "GOLD"}

		var mu sync.Mutex
		finalizeCalls := 0

		th.Record.On("FindById", mock.Anything, recA.Id).Return(recA, nil)
		th.Record.On("FindById", mock.Anything, recB.Id).Return(recB, nil)
		th.Record.On("UpdateAudit", mock.Anything, mock.Anything).Return(true, nil)
		th.Record.On("CountPending", mock.Anything, "mer-1", "batch-1", mock.Anything).Return(func(ctx context.Context, merchantId, batchId, excludeId string) int64 {
			mu.Lock()
			defer mu.Unlock()
			if records[excludeId].AuditStatus.IsTerminal() {
				return 0
			}
			return 1
		}, nil)
		th.Merchant.On("FindById", mock.Anything, "mer-1").Return(merchant, nil)
		th.Tier.On("GetTierConfig", mock.Anything, merchant.TierCode).Return(tier, nil)
		th.Merchant.On("FinalizeRefund", mock.Anything, "mer-1", tier).Return(func(ctx context.Context, merchantId string, tc entities.TierConfig) bool {
			mu.Lock()
			defer mu.Unlock()
			finalizeCalls++
			return finalizeCalls == 1
		}, nil)
		th.Ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
		th.Notification.On("Enqueue", mock.Anything, mock.Anything).Return(nil)

		var wg sync.WaitGroup
		for _, id := range []string{recA.Id, recB.Id} {
			wg.Add(1)
			go func(recordId string) {
				defer wg.Done()
				_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
					RecordId: recordId, AdminId: "adm-2", Decision: request_params.DECISION_APPROVE,
				})
				assert.NoError(t, err)
			}(id)
		}
		wg.Wait()

		assert.Equal(t, 1, finalizeCalls)
	})

	t.Run("unknown decision", func(t *testing.T) {
		th := NewTestMarginApplication()
		record := offlineRecord("rec-9", 200)
		th.Record.On("FindById", mock.Anything, record.Id).Return(record, nil)

		_, err := th.MarginApplication.Audit(ctx, request_params.AuditRefundReq{
			RecordId: record.Id, AdminId: "adm-2", Decision: "MAYBE",
		})

		assert.Error(t, err)
	})
}
