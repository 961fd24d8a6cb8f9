package financial_record

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"margin-system/domain/entities"
	"margin-system/utils/configs"
	utils_errors "margin-system/utils/errors"
)

type FinancialRecordCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewFinancialRecordCollectionImpl(db *mongo.Client, conf *configs.Config) *FinancialRecordCollection {
	return &FinancialRecordCollection{
		conf:       conf,
		collection: db.Database(conf.MongoDBName).Collection("margin_records"),
	}
}

func (r *FinancialRecordCollection) InsertBatch(ctx context.Context, records []*entities.FinancialRecord) error {
	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, record)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *FinancialRecordCollection) FindById(ctx context.Context, recordId string) (res *entities.FinancialRecord, err error) {
	err = r.collection.FindOne(ctx, bson.M{"_id": recordId}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, utils_errors.ErrRecordNotFound
	}
	return
}

func (r *FinancialRecordCollection) ListByMerchant(ctx context.Context, merchantId string, onlyPending bool) (res []*entities.FinancialRecord, err error) {
	filter := bson.M{"merchant_id": merchantId}
	if onlyPending {
		filter["audit_status"] = entities.AUDIT_PENDING
	}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.M{"created_at": -1},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var record entities.FinancialRecord

		err = cursor.Decode(&record)
		if err != nil {
			continue
		}

		res = append(res, &record)
	}

	return res, cursor.Err()
}

func (r *FinancialRecordCollection) CountPending(ctx context.Context, merchantId, batchId, excludeId string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"merchant_id":  merchantId,
		"batch_id":     batchId,
		"audit_status": entities.AUDIT_PENDING,
		"_id":          bson.M{"$ne": excludeId},
	})
}

// UpdateAudit only matches while the record is still PENDING; a lost race
// shows up as ModifiedCount 0 and is reported to the caller as not-won.
func (r *FinancialRecordCollection) UpdateAudit(ctx context.Context, record *entities.FinancialRecord) (bool, error) {
	update, err := r.collection.UpdateOne(ctx, bson.M{
		"_id":          record.Id,
		"audit_status": entities.AUDIT_PENDING,
	}, bson.M{
		"$set": bson.M{
			"audit_status":      record.AuditStatus,
			"settlement_status": record.SettlementStatus,
			"reject_reason":     record.RejectReason,
			"admin_note":        record.AdminNote,
			"audited_by_admin":  record.AuditedByAdmin,
			"audited_at":        record.AuditedAt,
		},
	})

	if err != nil {
		return false, err
	}

	return update.ModifiedCount > 0, nil
}
