package ledger

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"margin-system/domain/entities"
	"margin-system/utils/configs"
	"margin-system/utils/helpers"
)

// LedgerCollection appends margin bill entries. Entries are immutable; there
// is no update path.
type LedgerCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewLedgerCollectionImpl(db *mongo.Client, conf *configs.Config) *LedgerCollection {
	return &LedgerCollection{
		conf:       conf,
		collection: db.Database(conf.MongoDBName).Collection("margin_bills"),
	}
}

func (l *LedgerCollection) Append(ctx context.Context, entry *entities.LedgerEntry) error {
	if entry.Id == "" {
		entry.Id = helpers.GetUUId()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = helpers.GetCurrentTime()
	}

	_, err := l.collection.InsertOne(ctx, entry)
	return err
}

func (l *LedgerCollection) ListByMerchant(ctx context.Context, merchantId string, limit int64) (res []*entities.LedgerEntry, err error) {
	cursor, err := l.collection.Find(ctx, bson.M{"merchant_id": merchantId}, &options.FindOptions{
		Sort:  bson.M{"created_at": -1},
		Limit: &limit,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var entry entities.LedgerEntry

		err = cursor.Decode(&entry)
		if err != nil {
			continue
		}

		res = append(res, &entry)
	}

	return res, cursor.Err()
}
