package request_params

import (
	"margin-system/domain/value_objects"
)

type ApplyRefundReq struct {
	MerchantId string                     `json:"merchant_id"`
	AdminId    string                     `json:"admin_id"`
	Payee      value_objects.OfflinePayee `json:"payee"`
}

type AuditDecision string

const (
	DECISION_APPROVE AuditDecision = "APPROVE"
	DECISION_REJECT  AuditDecision = "REJECT"
)

type AuditRefundReq struct {
	RecordId  string        `json:"record_id"`
	AdminId   string        `json:"admin_id"`
	Decision  AuditDecision `json:"decision"`
	Reason    string        `json:"reason"`
	AdminNote string        `json:"admin_note"`
}
