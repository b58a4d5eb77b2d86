package answers

import (
	"context"

	"questionnaire-service/internal/app/models"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerMongoRepository struct {
	Collection *mongo.Collection
}

func NewAnswerMongoRepository(client *mongo.Client, dbName string) AnswerRepository {
	return &AnswerMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionAnswers),
	}
}

// SaveAnswer upserts on (subject, question number, run): a second write
// for the same key is an explicit correction replacing the stored value.
func (repo *AnswerMongoRepository) SaveAnswer(ctx context.Context, answer *models.Answer) (string, error) {
	filter := bson.M{
		"subjectId":      answer.SubjectID,
		"questionNumber": answer.QuestionNumber,
		"runId":          answer.RunID,
	}
	update := bson.M{"$set": bson.M{
		"subjectId":      answer.SubjectID,
		"questionNumber": answer.QuestionNumber,
		"runId":          answer.RunID,
		"answer":         answer.Answer,
		"created":        answer.Created,
	}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return answer.ID, nil
}

func (repo *AnswerMongoRepository) FindAnswers(ctx context.Context, subjectID, runID string) ([]models.Answer, error) {
	filter := bson.M{
		"subjectId": subjectID,
		"runId":     runID,
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Answer
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return results, nil
}
