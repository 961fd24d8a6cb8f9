package deposit_order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"margin-system/domain/constants"
	"margin-system/domain/entities"
	"margin-system/utils/configs"
)

type DepositOrderCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewDepositOrderCollectionImpl(db *mongo.Client, conf *configs.Config) *DepositOrderCollection {
	return &DepositOrderCollection{
		conf:       conf,
		collection: db.Database(conf.MongoDBName).Collection("deposit_orders"),
	}
}

// FindRefundableByMerchant sorts ascending by order_id. The allocation result
// depends on this order, so it must stay stable across calls.
func (o *DepositOrderCollection) FindRefundableByMerchant(ctx context.Context, merchantId string) (res []entities.DepositOrder, err error) {
	cursor, err := o.collection.Find(ctx, bson.M{
		"merchant_id": merchantId,
		"status":      entities.ORDER_STATUS_PAID,
		"channel":     bson.M{"$ne": constants.CHANNEL_OFFLINE_SYSTEM},
	}, &options.FindOptions{
		Sort: bson.M{"order_id": 1},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var order entities.DepositOrder

		err = cursor.Decode(&order)
		if err != nil {
			continue
		}

		res = append(res, order)
	}

	return res, cursor.Err()
}

func (o *DepositOrderCollection) MarkRefunded(ctx context.Context, orderRef string) error {
	_, err := o.collection.UpdateOne(ctx, bson.M{"order_ref": orderRef}, bson.M{
		"$set": bson.M{"status": entities.ORDER_STATUS_REFUNDED},
	})
	return err
}
