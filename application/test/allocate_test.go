package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	utils_errors "margin-system/utils/errors"
)

func merchantWithMargin(margin int64) *entities.Merchant {
	return &entities.Merchant{
		Id:           "mer-1",
		Name:         "Pho 24",
		TierCode:     "GOLD",
		StoreStatus:  entities.STORE_OPEN,
		Margin:       decimal.NewFromInt(margin),
		MarginStatus: entities.MARGIN_ACTIVE,
		PayoutType:   "BANK",
		PayoutName:   "NGUYEN VAN A",
		PayoutCode:   "9704000011112222",
	}
}

func paidOrder(orderId, ref string, amount int64, channel string) entities.DepositOrder {
	return entities.DepositOrder{
		OrderId:    orderId,
		OrderRef:   ref,
		MerchantId: "mer-1",
		PaidAmount: decimal.NewFromInt(amount),
		Channel:    channel,
		Status:     entities.ORDER_STATUS_PAID,
	}
}

func TestMarginApplication_PreviewRefund(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name        string
		merchant    *entities.Merchant
		orders      []entities.DepositOrder
		legacy      bool
		wantSlices  []int64
		wantOnline  int64
		wantOffline int64
		wantError   error
	}{
		{
			name:     "orders cover part of the margin, remainder goes offline",
			merchant: merchantWithMargin(500),
			orders: []entities.DepositOrder{
				paidOrder("0001", "GW-0001", 300, constants.CHANNEL_WECHAT),
				paidOrder("0002", "GW-0002", 150, constants.CHANNEL_ALIPAY),
			},
			wantSlices:  []int64{300, 150},
			wantOnline:  450,
			wantOffline: 50,
		},
		{
			name:     "covering order is capped at the running remainder",
			merchant: merchantWithMargin(500),
			orders: []entities.DepositOrder{
				paidOrder("0001", "GW-0001", 300, constants.CHANNEL_WECHAT),
				paidOrder("0002", "GW-0002", 400, constants.CHANNEL_BANK),
			},
			wantSlices:  []int64{300, 200},
			wantOnline:  500,
			wantOffline: 0,
		},
		{
			name:     "legacy formula charges the full margin on the covering order",
			merchant: merchantWithMargin(500),
			orders: []entities.DepositOrder{
				paidOrder("0001", "GW-0001", 300, constants.CHANNEL_WECHAT),
				paidOrder("0002", "GW-0002", 400, constants.CHANNEL_BANK),
			},
			legacy:      true,
			wantSlices:  []int64{300, 500},
			wantOnline:  800,
			wantOffline: 0,
		},
		{
			name:        "single order larger than the margin",
			merchant:    merchantWithMargin(100),
			orders:      []entities.DepositOrder{paidOrder("0001", "GW-0001", 300, constants.CHANNEL_WECHAT)},
			wantSlices:  []int64{100},
			wantOnline:  100,
			wantOffline: 0,
		},
		{
			name:        "no funding orders means a fully offline refund",
			merchant:    merchantWithMargin(500),
			orders:      []entities.DepositOrder{},
			wantSlices:  []int64{},
			wantOnline:  0,
			wantOffline: 500,
		},
		{
			name: "suspended merchants may still apply",
			merchant: func() *entities.Merchant {
				m := merchantWithMargin(200)
				m.MarginStatus = entities.MARGIN_SUSPENDED
				return m
			}(),
			orders:      []entities.DepositOrder{paidOrder("0001", "GW-0001", 200, constants.CHANNEL_BANK)},
			wantSlices:  []int64{200},
			wantOnline:  200,
			wantOffline: 0,
		},
		{
			name: "refund already pending",
			merchant: func() *entities.Merchant {
				m := merchantWithMargin(0)
				m.MarginStatus = entities.MARGIN_REFUND_PENDING
				return m
			}(),
			wantError: utils_errors.ErrDuplicateApplication,
		},
		{
			name: "no deposit lock on the merchant",
			merchant: func() *entities.Merchant {
				m := merchantWithMargin(500)
				m.MarginStatus = entities.MARGIN_NONE
				return m
			}(),
			wantError: utils_errors.ErrNoRefundableDeposit,
		},
		{
			name:      "zero margin",
			merchant:  merchantWithMargin(0),
			wantError: utils_errors.ErrNoRefundableDeposit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestMarginApplication()
			th.Config.Compat.LegacyAllocation = tt.legacy

			th.Merchant.On("FindById", mock.Anything, tt.merchant.Id).Return(tt.merchant, nil)
			th.DepositOrder.On("FindRefundableByMerchant", mock.Anything, tt.merchant.Id).Return(tt.orders, nil)

			plan, err := th.MarginApplication.PreviewRefund(ctx, tt.merchant.Id)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(tt.wantSlices), len(plan.Slices))
			for i, want := range tt.wantSlices {
				assert.True(t, plan.Slices[i].RefundAmount.Equal(decimal.NewFromInt(want)),
					"slice %d: want %d got %v", i, want, plan.Slices[i].RefundAmount)
			}
			assert.True(t, plan.OnlineTotal.Equal(decimal.NewFromInt(tt.wantOnline)))
			assert.True(t, plan.OfflineTotal.Equal(decimal.NewFromInt(tt.wantOffline)))
			assert.Equal(t, tt.merchant.PayoutType, plan.PayoutMethod.Type)
		})
	}
}
