package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is an append-only balance change record ("bill"). The write
// primitive is owned by the accounting side; this service only appends.
type LedgerEntry struct {
	Id         string          `json:"id" bson:"_id,omitempty"`
	MerchantId string          `json:"merchant_id" bson:"merchant_id"`
	Category   string          `json:"category" bson:"category"`
	Amount     decimal.Decimal `json:"amount" bson:"amount"`
	Direction  int             `json:"direction" bson:"direction"`
	Note       string          `json:"note" bson:"note"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
}
