package database_mgo

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"margin-system/utils/helpers"
)

func NewMongoDBconnection(uri string) *mongo.Client {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri).SetRegistry(DecimalRegistry()))

	if err != nil {
		panic(err.Error())
	}

	err = client.Connect(helpers.ContextWithTimeOut())

	if err != nil {
		panic("can't be reachable server")
	}

	return client
}
