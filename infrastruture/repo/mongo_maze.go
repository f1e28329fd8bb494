package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMazeRepo handles the persistence of mazes in MongoDB.
type MongoMazeRepo struct {
	collection *mongo.Collection
}

// NewMongoMazeRepo creates a new MongoMazeRepo with the given MongoDB client, database name, and collection name.
func NewMongoMazeRepo(client *mongo.Client, dbName, collectionName string) *MongoMazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoMazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (r *MongoMazeRepo) Save(ctx context.Context, maze *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{
		"$set": bson.M{
			"rows":        maze.Rows,
			"cols":        maze.Cols,
			"seed":        maze.Seed,
			"layout":      maze.Layout,
			"escaped":     maze.Escaped,
			"routeLength": maze.RouteLength,
			"parentId":    maze.ParentID,
			"createdAt":   maze.CreatedAt,
			"updatedAt":   maze.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a maze by its ID.
func (r *MongoMazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var maze dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &maze, nil
}
