package application

import (
	"github.com/shopspring/decimal"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	"margin-system/domain/value_objects"
	"margin-system/utils/helpers"
)

// makeOnlineRecord freezes one funding order slice into an auditable record.
// The snapshot keeps the order reference and both amounts so the audit step
// can verify the cap without re-reading the order.
func makeOnlineRecord(merchantId, batchId, adminId string, slice value_objects.OnlineSlice) *entities.FinancialRecord {
	return &entities.FinancialRecord{
		Id:               helpers.GetUUId(),
		MerchantId:       merchantId,
		BatchId:          batchId,
		Kind:             entities.KIND_MARGIN_REFUND,
		Amount:           slice.RefundAmount,
		AuditStatus:      entities.AUDIT_PENDING,
		SettlementStatus: entities.SETTLEMENT_NOT_TRANSFERRED,
		Channel:          slice.Order.Channel,
		TargetSnapshot: entities.TargetSnapshot{
			OrderRef:     slice.Order.OrderRef,
			PaidAmount:   slice.Order.PaidAmount,
			RefundAmount: slice.RefundAmount,
		},
		AppliedByAdmin: adminId,
		CreatedAt:      helpers.GetCurrentTime(),
	}
}

func makeOfflineRecord(merchantId, batchId, adminId string, amount decimal.Decimal, payee value_objects.OfflinePayee) *entities.FinancialRecord {
	return &entities.FinancialRecord{
		Id:               helpers.GetUUId(),
		MerchantId:       merchantId,
		BatchId:          batchId,
		Kind:             entities.KIND_MARGIN_REFUND,
		Amount:           amount,
		AuditStatus:      entities.AUDIT_PENDING,
		SettlementStatus: entities.SETTLEMENT_NOT_TRANSFERRED,
		Channel:          constants.CHANNEL_OFFLINE_SYSTEM,
		TargetSnapshot: entities.TargetSnapshot{
			PayeeType:  payee.Type,
			PayeeName:  payee.Name,
			PayeeCode:  payee.Code,
			ProofImage: payee.ProofImage,
		},
		AppliedByAdmin: adminId,
		CreatedAt:      helpers.GetCurrentTime(),
	}
}
