package entities

import "margin-system/domain/constants"

type RefundReq struct {
	ClientCode string        `json:"client_code"`
	TransTime  int64         `json:"trans_time"`
	Data       RefundReqData `json:"data"`
	Signature  string        `json:"signature"`
}

type RefundReqData struct {
	// GatewayTransactionID is the funding order reference and doubles as the
	// gateway side idempotency key for repeated refund calls.
	GatewayTransactionID string `json:"gateway_transaction_id"`
	Amount               string `json:"amount"`
}

type RefundRes struct {
	ErrorCode constants.BankGwStatus `json:"error_code"`
	Data      RefundResData          `json:"data,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Signature string                 `json:"signature"`
}

type RefundResData struct {
	BankTransactionId string `json:"bank_transaction_id"`
}
