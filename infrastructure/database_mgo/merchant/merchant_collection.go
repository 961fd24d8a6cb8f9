package merchant

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"margin-system/domain/entities"
	"margin-system/utils/configs"
	utils_errors "margin-system/utils/errors"
	"margin-system/utils/helpers"
)

type MerchantCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewMerchantCollectionImpl(db *mongo.Client, conf *configs.Config) *MerchantCollection {
	return &MerchantCollection{
		conf:       conf,
		collection: db.Database(conf.MongoDBName).Collection("merchants"),
	}
}

func (m *MerchantCollection) FindById(ctx context.Context, merchantId string) (res *entities.Merchant, err error) {
	err = m.collection.FindOne(ctx, bson.M{"_id": merchantId}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, utils_errors.ErrMerchantNotFound
	}
	return
}

// AcquireRefundLock keeps the precondition inside the filter so two
// concurrent applications can never both pass the lock check.
func (m *MerchantCollection) AcquireRefundLock(ctx context.Context, merchantId string) (res *entities.Merchant, err error) {
	before := options.Before

	err = m.collection.FindOneAndUpdate(ctx, bson.M{
		"_id":           merchantId,
		"margin_status": bson.M{"$in": []entities.MarginStatus{entities.MARGIN_ACTIVE, entities.MARGIN_SUSPENDED}},
		"margin":        bson.M{"$gt": 0},
	}, bson.M{
		"$set": bson.M{
			"margin":        decimal.Zero,
			"margin_status": entities.MARGIN_REFUND_PENDING,
			"updated_at":    helpers.GetCurrentTime(),
		},
	}, &options.FindOneAndUpdateOptions{
		ReturnDocument: &before,
	}).Decode(&res)

	if err == mongo.ErrNoDocuments {
		return nil, utils_errors.ErrDuplicateApplication
	}

	return
}

func (m *MerchantCollection) ReleaseRefundLock(ctx context.Context, merchantId string, margin decimal.Decimal, status entities.MarginStatus) error {
	update, err := m.collection.UpdateOne(ctx, bson.M{"_id": merchantId}, bson.M{
		"$set": bson.M{
			"margin":        margin,
			"margin_status": status,
			"updated_at":    helpers.GetCurrentTime(),
		},
	})
	if err != nil {
		return err
	}
	if update.MatchedCount == 0 {
		return utils_errors.ErrMerchantNotFound
	}
	return nil
}

// RestoreMargin records the rejected record id on the merchant. A retry for
// an id already present matches nothing and credits nothing.
func (m *MerchantCollection) RestoreMargin(ctx context.Context, merchantId, recordId string, amount decimal.Decimal) error {
	_, err := m.collection.UpdateOne(ctx, bson.M{
		"_id":              merchantId,
		"restored_records": bson.M{"$ne": recordId},
	}, bson.M{
		"$inc":      bson.M{"margin": amount},
		"$addToSet": bson.M{"restored_records": recordId},
		"$set": bson.M{
			"margin_status": entities.MARGIN_ACTIVE,
			"updated_at":    helpers.GetCurrentTime(),
		},
	})

	// A zero matched count means an earlier attempt already restored this
	// record; nothing is credited twice.
	return err
}

// FinalizeRefund is guarded on the lock still being REFUND_PENDING, so two
// rival finalizers resolve to exactly one winner.
func (m *MerchantCollection) FinalizeRefund(ctx context.Context, merchantId string, tier entities.TierConfig) (bool, error) {
	set := bson.M{
		"margin":         decimal.Zero,
		"margin_default": tier.MarginRequired,
		"margin_status":  entities.MARGIN_NONE,
		"updated_at":     helpers.GetCurrentTime(),
	}

	if tier.RequiresMargin() {
		set["margin_status"] = entities.MARGIN_REQUIRED
		set["store_status"] = entities.STORE_CLOSED
	}

	update, err := m.collection.UpdateOne(ctx, bson.M{
		"_id":           merchantId,
		"margin_status": entities.MARGIN_REFUND_PENDING,
	}, bson.M{"$set": set})

	if err != nil {
		return false, err
	}

	return update.ModifiedCount > 0, nil
}
