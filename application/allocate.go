package application

import (
	"github.com/shopspring/decimal"
	"margin-system/domain/entities"
	"margin-system/domain/value_objects"
)

// allocate splits the merchant's held margin across its funding orders in
// retrieval order (ascending order_id). Whatever the orders cannot cover is
// the offline remainder.
//
// legacy replays the historical formula from the old back office, which put
// the full original margin on the covering order instead of the running
// remainder. That formula over-refunds whenever a later order's paid amount
// exceeds what is left, so it is only kept behind the compat switch.
func allocate(merchant *entities.Merchant, orders []entities.DepositOrder, legacy bool) value_objects.RefundPlan {
	plan := value_objects.RefundPlan{
		MerchantId:   merchant.Id,
		Margin:       merchant.Margin,
		OnlineTotal:  decimal.Zero,
		OfflineTotal: decimal.Zero,
		PayoutMethod: value_objects.PayoutMethodInfo{
			Type: merchant.PayoutType,
			Name: merchant.PayoutName,
			Code: merchant.PayoutCode,
		},
	}

	remaining := merchant.Margin

	for _, order := range orders {
		if !remaining.IsPositive() {
			break
		}

		var slice decimal.Decimal
		if order.PaidAmount.LessThan(remaining) {
			slice = order.PaidAmount
		} else if legacy {
			slice = merchant.Margin
		} else {
			slice = remaining
		}

		remaining = remaining.Sub(slice)
		plan.OnlineTotal = plan.OnlineTotal.Add(slice)
		plan.Slices = append(plan.Slices, value_objects.OnlineSlice{
			Order:        order,
			RefundAmount: slice,
		})
	}

	if remaining.IsPositive() {
		plan.OfflineTotal = remaining
	}

	return plan
}
