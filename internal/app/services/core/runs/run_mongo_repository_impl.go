package runs

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
)

type RunMongoRepository struct {
	RunInfo        *mongo.Collection
	RunInfoHistory *mongo.Collection
}

func NewRunMongoRepository(client *mongo.Client, dbName string) RunRepository {
	db := client.Database(dbName)
	return &RunMongoRepository{
		RunInfo:        db.Collection(constvars.MongoCollectionRunInfo),
		RunInfoHistory: db.Collection(constvars.MongoCollectionRunInfoHistory),
	}
}

func (repo *RunMongoRepository) CreateRunInfo(ctx context.Context, runInfo *models.RunInfo) (string, error) {
	if runInfo.ID == "" {
		runInfo.ID = uuid.NewString()
	}
	if _, err := repo.RunInfo.InsertOne(ctx, runInfo); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return runInfo.ID, nil
}

func (repo *RunMongoRepository) FindRunInfoByID(ctx context.Context, runInfoID string) (*models.RunInfo, error) {
	var runInfo models.RunInfo
	err := repo.RunInfo.FindOne(ctx, bson.M{"_id": runInfoID}).Decode(&runInfo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &runInfo, nil
}

func (repo *RunMongoRepository) UpdateRunInfo(ctx context.Context, runInfo *models.RunInfo) error {
	filter := bson.M{"_id": runInfo.ID}
	update := bson.M{"$set": bson.M{
		"questionSetId": runInfo.QuestionSetID,
		"state":         runInfo.State,
		"cookies":       runInfo.Cookies,
		"tags":          runInfo.Tags,
		"skipped":       runInfo.Skipped,
	}}
	if _, err := repo.RunInfo.UpdateOne(ctx, filter, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *RunMongoRepository) DeleteRunInfo(ctx context.Context, runInfoID string) error {
	if _, err := repo.RunInfo.DeleteOne(ctx, bson.M{"_id": runInfoID}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *RunMongoRepository) CreateRunInfoHistory(ctx context.Context, history *models.RunInfoHistory) (string, error) {
	if history.ID == "" {
		history.ID = uuid.NewString()
	}
	if _, err := repo.RunInfoHistory.InsertOne(ctx, history); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return history.ID, nil
}

func (repo *RunMongoRepository) FindRunInfoHistoryBySubject(ctx context.Context, subjectID string) ([]models.RunInfoHistory, error) {
	filter := bson.M{"subjectId": subjectID}
	findOptions := options.Find().SetSort(bson.D{{Key: "completed", Value: 1}})
	cursor, err := repo.RunInfoHistory.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.RunInfoHistory
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return results, nil
}
