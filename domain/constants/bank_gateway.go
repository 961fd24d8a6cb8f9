package constants

type BankGwStatus string

func (status BankGwStatus) IsSuccess() bool {
	if len(status) > 2 && status[0:1] == "2" {
		return true
	}
	return false
}

func (status BankGwStatus) IsFail() bool {
	if len(status) > 2 && status[0:1] == "4" {
		return true
	}
	return false
}

// Timeout style codes: the gateway may have executed the refund even though
// the response was lost. Safe to retry with the same idempotency key.
var TimeoutErrCode = []string{"306", "502"}
