package tier_config

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"margin-system/domain/entities"
	"margin-system/utils/configs"
)

type RepoImpl struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewTierConfigRepository(db *mongo.Client, conf *configs.Config) *RepoImpl {
	return &RepoImpl{
		conf:       conf,
		collection: db.Database(conf.MongoDBName).Collection("tier_configs"),
	}
}

func (r *RepoImpl) GetTierConfig(ctx context.Context, tierCode string) (res entities.TierConfig, err error) {
	err = r.collection.FindOne(ctx, bson.M{"tier_code": tierCode}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		// Unconfigured tiers mandate no margin.
		return entities.TierConfig{TierCode: tierCode}, nil
	}
	return res, err
}
