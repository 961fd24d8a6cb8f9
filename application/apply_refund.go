package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	"margin-system/domain/request_params"
	"margin-system/domain/value_objects"
	utils_errors "margin-system/utils/errors"
	"margin-system/utils/helpers"
)

// PreviewRefund computes the online/offline split without touching any state.
// Admins call it to see the allocation and whether offline payee fields will
// be required before they submit the real application.
func (us *MarginApplication) PreviewRefund(ctx context.Context, merchantId string) (value_objects.RefundPlan, error) {
	merchant, err := us.MerchantRepo.FindById(ctx, merchantId)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR)
		return value_objects.RefundPlan{}, err
	}

	if err := checkRefundable(merchant); err != nil {
		return value_objects.RefundPlan{}, err
	}

	orders, err := us.DepositOrderRepo.FindRefundableByMerchant(ctx, merchantId)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_orders")
		return value_objects.RefundPlan{}, err
	}

	return allocate(merchant, orders, us.Config.Compat.LegacyAllocation), nil
}

// ApplyRefund runs the allocation for real: one financial record per slice,
// margin zeroed, deposit lock set to REFUND_PENDING, full outflow on the
// ledger. The precondition check and the mutation ride in one conditional
// update so two concurrent applications cannot both get through.
func (us *MarginApplication) ApplyRefund(ctx context.Context, request request_params.ApplyRefundReq) (res *value_objects.ApplyResult, err error) {
	us.MerchantLock.Lock(request.MerchantId)
	defer us.MerchantLock.Unlock(request.MerchantId)

	merchant, err := us.MerchantRepo.FindById(ctx, request.MerchantId)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR)
		return nil, err
	}

	if err = checkRefundable(merchant); err != nil {
		return nil, err
	}

	orders, err := us.DepositOrderRepo.FindRefundableByMerchant(ctx, request.MerchantId)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_orders")
		return nil, err
	}

	plan := allocate(merchant, orders, us.Config.Compat.LegacyAllocation)

	// The offline payee must be complete before anything is written, not
	// after the merchant is already locked.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if plan.HasOfflineRemainder() && !request.Payee.IsComplete() {
			return utils_errors.ErrMissingOfflinePayeeInfo
		}
		return nil
	})
	g.Go(func() error {
		if !plan.OnlineTotal.Add(plan.OfflineTotal).Equal(plan.Margin) {
			return fmt.Errorf("allocation of %v does not conserve margin %v", plan.OnlineTotal.Add(plan.OfflineTotal), plan.Margin)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	batchId := helpers.GetUUId()

	records := make([]*entities.FinancialRecord, 0, len(plan.Slices)+1)
	for _, slice := range plan.Slices {
		records = append(records, makeOnlineRecord(merchant.Id, batchId, request.AdminId, slice))
	}
	if plan.HasOfflineRemainder() {
		records = append(records, makeOfflineRecord(merchant.Id, batchId, request.AdminId, plan.OfflineTotal, request.Payee))
	}

	pre, err := us.MerchantRepo.AcquireRefundLock(ctx, request.MerchantId)
	if err != nil {
		return nil, err
	}

	if !pre.Margin.Equal(plan.Margin) {
		// Margin moved between the read and the lock; the plan no longer
		// matches reality. Put the merchant back and make the admin retry.
		us.revertRefundLock(ctx, pre)
		return nil, utils_errors.ErrGeneral
	}

	if err = us.RecordRepo.InsertBatch(ctx, records); err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_RECORD_ERROR + "_insert")
		us.revertRefundLock(ctx, pre)
		return nil, err
	}

	ledgerErr := us.LedgerRepo.Append(ctx, &entities.LedgerEntry{
		MerchantId: merchant.Id,
		Category:   constants.LEDGER_CATEGORY_MARGIN,
		Amount:     plan.Margin,
		Direction:  constants.LEDGER_DIRECTION_OUT,
		Note:       fmt.Sprintf("margin refund applied, batch %v", batchId),
	})
	if ledgerErr != nil {
		us.Logger.With(zap.String("batch_id", batchId), zap.Error(ledgerErr)).Error(constants.SERVICE_LEDGER_ERROR)
	}

	result := &value_objects.ApplyResult{
		Plan:    plan,
		BatchId: batchId,
		Records: records,
	}

	us.notifyApplied(*merchant, *result)

	return result, nil
}

func (us *MarginApplication) revertRefundLock(ctx context.Context, pre *entities.Merchant) {
	if err := us.MerchantRepo.ReleaseRefundLock(ctx, pre.Id, pre.Margin, pre.MarginStatus); err != nil {
		us.Logger.With(zap.String("merchant_id", pre.Id), zap.Error(err)).Error(constants.SERVICE_MERCHANT_ERROR + "_revert")
	}
}

func checkRefundable(merchant *entities.Merchant) error {
	if merchant.MarginStatus == entities.MARGIN_REFUND_PENDING {
		return utils_errors.ErrDuplicateApplication
	}
	if !merchant.MarginStatus.Refundable() || !merchant.Margin.IsPositive() {
		return utils_errors.ErrNoRefundableDeposit
	}
	return nil
}
