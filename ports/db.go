package ports

import "go.mongodb.org/mongo-driver/mongo"

type DB = *mongo.Database
