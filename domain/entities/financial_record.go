package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"margin-system/domain/constants"
)

type RecordKind int

const (
	KIND_WITHDRAWAL    RecordKind = 0
	KIND_MARGIN_REFUND RecordKind = 1
)

type AuditStatus int

const (
	AUDIT_PENDING  AuditStatus = 0
	AUDIT_APPROVED AuditStatus = 1
	AUDIT_REJECTED AuditStatus = -1
)

func (s AuditStatus) StatusString() string {
	switch s {
	case AUDIT_PENDING:
		return "AUDIT_PENDING"
	case AUDIT_APPROVED:
		return "AUDIT_APPROVED"
	case AUDIT_REJECTED:
		return "AUDIT_REJECTED"
	}
	return "AUDIT_UNKNOWN"
}

func (s AuditStatus) IsTerminal() bool {
	return s == AUDIT_APPROVED || s == AUDIT_REJECTED
}

type SettlementStatus int

const (
	SETTLEMENT_NOT_TRANSFERRED SettlementStatus = 0
	SETTLEMENT_TRANSFERRED     SettlementStatus = 1
)

// TargetSnapshot is frozen at record creation time. Online slices carry the
// funding order reference, offline slices carry the admin supplied payee.
type TargetSnapshot struct {
	OrderRef     string          `json:"order_ref,omitempty" bson:"order_ref,omitempty"`
	PaidAmount   decimal.Decimal `json:"paid_amount,omitempty" bson:"paid_amount,omitempty"`
	RefundAmount decimal.Decimal `json:"refund_amount,omitempty" bson:"refund_amount,omitempty"`

	PayeeType  string `json:"payee_type,omitempty" bson:"payee_type,omitempty"`
	PayeeName  string `json:"payee_name,omitempty" bson:"payee_name,omitempty"`
	PayeeCode  string `json:"payee_code,omitempty" bson:"payee_code,omitempty"`
	ProofImage string `json:"proof_image,omitempty" bson:"proof_image,omitempty"`
}

// FinancialRecord is one independently auditable slice of a refund batch.
// Created once at apply time, mutated exactly once by an audit decision,
// never deleted.
type FinancialRecord struct {
	Id               string           `json:"id" bson:"_id,omitempty"`
	MerchantId       string           `json:"merchant_id" bson:"merchant_id"`
	BatchId          string           `json:"batch_id" bson:"batch_id"`
	Kind             RecordKind       `json:"kind" bson:"kind"`
	Amount           decimal.Decimal  `json:"amount" bson:"amount"`
	AuditStatus      AuditStatus      `json:"audit_status" bson:"audit_status"`
	SettlementStatus SettlementStatus `json:"settlement_status" bson:"settlement_status"`
	Channel          string           `json:"channel" bson:"channel"`
	TargetSnapshot   TargetSnapshot   `json:"target_snapshot" bson:"target_snapshot"`
	RejectReason     string           `json:"reject_reason,omitempty" bson:"reject_reason,omitempty"`
	AdminNote        string           `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	AppliedByAdmin   string           `json:"applied_by_admin" bson:"applied_by_admin"`
	AuditedByAdmin   string           `json:"audited_by_admin,omitempty" bson:"audited_by_admin,omitempty"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
	AuditedAt        *time.Time       `json:"audited_at,omitempty" bson:"audited_at,omitempty"`
}

// IsOnline reports whether this slice refunds through the payment gateway.
func (r FinancialRecord) IsOnline() bool {
	return r.Channel != constants.CHANNEL_OFFLINE_SYSTEM
}
