package value_objects

import (
	"github.com/shopspring/decimal"
	"margin-system/domain/entities"
)

// OfflinePayee is the admin supplied transfer target for the offline slice.
type OfflinePayee struct {
	Type       string `json:"type" enums:"BANK|WECHAT|ALIPAY"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	ProofImage string `json:"proof_image"`
}

func (p OfflinePayee) IsComplete() bool {
	return p.Type != "" && p.Name != "" && p.Code != "" && p.ProofImage != ""
}

// OnlineSlice is one funding order portion of a refund plan.
type OnlineSlice struct {
	Order        entities.DepositOrder `json:"order"`
	RefundAmount decimal.Decimal       `json:"refund_amount"`
}

// PayoutMethodInfo mirrors the payout contact on file with the merchant,
// shown to the admin before an offline transfer. Display only.
type PayoutMethodInfo struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// RefundPlan is the allocation result. OnlineTotal + OfflineTotal always
// equals the margin held at plan time.
type RefundPlan struct {
	MerchantId   string          `json:"merchant_id"`
	Margin       decimal.Decimal `json:"margin"`
	OnlineTotal  decimal.Decimal `json:"online_total"`
	OfflineTotal decimal.Decimal `json:"offline_total"`
	Slices       []OnlineSlice   `json:"slices"`

	PayoutMethod PayoutMethodInfo `json:"payout_method"`
}

// HasOfflineRemainder reports whether part of the refund cannot go back
// through the original payment channels.
func (p RefundPlan) HasOfflineRemainder() bool {
	return p.OfflineTotal.IsPositive()
}

// ApplyResult is returned by a persisted refund application.
type ApplyResult struct {
	Plan    RefundPlan                  `json:"plan"`
	BatchId string                      `json:"batch_id"`
	Records []*entities.FinancialRecord `json:"records"`
}

// AuditResult reports the outcome of one audit decision.
type AuditResult struct {
	Record    *entities.FinancialRecord `json:"record"`
	Finalized bool                      `json:"finalized"`
}
