package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginStatus is the deposit lock on the merchant. REFUND_PENDING acts as an
// application level mutex: it is held from the moment a refund batch is
// created until every record of the batch reaches a terminal audit status.
type MarginStatus int

const (
	MARGIN_NONE           MarginStatus = 0
	MARGIN_REQUIRED       MarginStatus = 1
	MARGIN_ACTIVE         MarginStatus = 10
	MARGIN_SUSPENDED      MarginStatus = -10
	MARGIN_REFUND_PENDING MarginStatus = -1
)

func (s MarginStatus) StatusString() string {
	switch s {
	case MARGIN_NONE:
		return "MARGIN_NONE"
	case MARGIN_REQUIRED:
		return "MARGIN_REQUIRED"
	case MARGIN_ACTIVE:
		return "MARGIN_ACTIVE"
	case MARGIN_SUSPENDED:
		return "MARGIN_SUSPENDED"
	case MARGIN_REFUND_PENDING:
		return "MARGIN_REFUND_PENDING"
	}
	return "MARGIN_UNKNOWN"
}

// Refundable reports whether a refund application may start from this status.
func (s MarginStatus) Refundable() bool {
	return s == MARGIN_ACTIVE || s == MARGIN_SUSPENDED
}

const (
	STORE_OPEN   = "OPEN"
	STORE_CLOSED = "CLOSED"
)

type Merchant struct {
	Id            string          `json:"id" bson:"_id,omitempty"`
	Name          string          `json:"name" bson:"name,omitempty"`
	PhoneNumber   string          `json:"phone_number" bson:"phone_number,omitempty"`
	TierCode      string          `json:"tier_code" bson:"tier_code"`
	StoreStatus   string          `json:"store_status" bson:"store_status" enums:"OPEN|CLOSED"`
	Margin        decimal.Decimal `json:"margin" bson:"margin"`
	MarginStatus  MarginStatus    `json:"margin_status" bson:"margin_status"`
	MarginDefault decimal.Decimal `json:"margin_default" bson:"margin_default"`

	// Payout method on file, shown to the admin when part of a refund has to
	// be transferred offline.
	PayoutType string `json:"payout_type" bson:"payout_type" enums:"BANK|WECHAT|ALIPAY"`
	PayoutName string `json:"payout_name" bson:"payout_name"`
	PayoutCode string `json:"payout_code" bson:"payout_code"`

	// Ids of rejected refund slices already credited back. Guards a retried
	// rejection against crediting the same slice twice.
	RestoredRecords []string `json:"-" bson:"restored_records,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TierConfig maps a merchant tier to the margin it mandates.
type TierConfig struct {
	TierCode       string          `json:"tier_code" bson:"tier_code"`
	MarginRequired decimal.Decimal `json:"margin_required" bson:"margin_required"`
}

// RequiresMargin reports whether tier membership mandates a non-zero deposit.
func (t TierConfig) RequiresMargin() bool {
	return t.MarginRequired.IsPositive()
}
