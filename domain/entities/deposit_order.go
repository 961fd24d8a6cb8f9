package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ORDER_STATUS_PAID     = "PAID"
	ORDER_STATUS_REFUNDED = "REFUNDED"
)

// DepositOrder is a previously captured online payment that funded part of
// the merchant margin. Read only to the refund core except for the external
// refunded flag set after a successful gateway refund.
type DepositOrder struct {
	Id         string          `json:"id" bson:"_id,omitempty"`
	OrderId    string          `json:"order_id" bson:"order_id"`
	OrderRef   string          `json:"order_ref" bson:"order_ref"`
	MerchantId string          `json:"merchant_id" bson:"merchant_id"`
	PaidAmount decimal.Decimal `json:"paid_amount" bson:"paid_amount"`
	Channel    string          `json:"channel" bson:"channel"`
	Status     string          `json:"status" bson:"status" enums:"PAID|REFUNDED"`
	PaidAt     time.Time       `json:"paid_at" bson:"paid_at"`
}
