package questionnaires

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

type QuestionnaireMongoRepository struct {
	Questionnaires *mongo.Collection
	QuestionSets   *mongo.Collection
	Questions      *mongo.Collection
	Choices        *mongo.Collection
}

func NewQuestionnaireMongoRepository(client *mongo.Client, dbName string) QuestionnaireRepository {
	db := client.Database(dbName)
	return &QuestionnaireMongoRepository{
		Questionnaires: db.Collection(constvars.MongoCollectionQuestionnaires),
		QuestionSets:   db.Collection(constvars.MongoCollectionQuestionSets),
		Questions:      db.Collection(constvars.MongoCollectionQuestions),
		Choices:        db.Collection(constvars.MongoCollectionChoices),
	}
}

func (repo *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	if questionnaire.ID == "" {
		questionnaire.ID = uuid.NewString()
	}
	if _, err := repo.Questionnaires.InsertOne(ctx, questionnaire); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return questionnaire.ID, nil
}

func (repo *QuestionnaireMongoRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := repo.Questionnaires.FindOne(ctx, bson.M{"_id": questionnaireID}).Decode(&questionnaire)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (repo *QuestionnaireMongoRepository) CreateQuestionSet(ctx context.Context, questionSet *models.QuestionSet) (string, error) {
	if questionSet.ID == "" {
		questionSet.ID = uuid.NewString()
	}
	if _, err := repo.QuestionSets.InsertOne(ctx, questionSet); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return questionSet.ID, nil
}

func (repo *QuestionnaireMongoRepository) FindQuestionSets(ctx context.Context, questionnaireID string) ([]models.QuestionSet, error) {
	filter := bson.M{"questionnaireId": questionnaireID}
	findOptions := options.Find().SetSort(bson.D{{Key: "sortId", Value: 1}})
	cursor, err := repo.QuestionSets.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.QuestionSet
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return results, nil
}

func (repo *QuestionnaireMongoRepository) CreateQuestion(ctx context.Context, question *models.Question) (string, error) {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if _, err := repo.Questions.InsertOne(ctx, question); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return question.ID, nil
}

func (repo *QuestionnaireMongoRepository) FindQuestions(ctx context.Context, questionSetID string) ([]models.Question, error) {
	cursor, err := repo.Questions.Find(ctx, bson.M{"questionSetId": questionSetID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Question
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return results, nil
}

// FindQuestionByNumber looks the number up across the whole
// questionnaire, not one questionset, since an alias may point anywhere
// in the tree. The lookup joins through the questionset ids.
func (repo *QuestionnaireMongoRepository) FindQuestionByNumber(ctx context.Context, questionnaireID, number string) (*models.Question, error) {
	questionSets, err := repo.FindQuestionSets(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	questionSetIDs := make([]string, 0, len(questionSets))
	for _, questionSet := range questionSets {
		questionSetIDs = append(questionSetIDs, questionSet.ID)
	}

	filter := bson.M{
		"questionSetId": bson.M{"$in": questionSetIDs},
		"number":        number,
	}
	var question models.Question
	err = repo.Questions.FindOne(ctx, filter).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &question, nil
}

func (repo *QuestionnaireMongoRepository) CreateChoice(ctx context.Context, choice *models.Choice) (string, error) {
	if choice.ID == "" {
		choice.ID = uuid.NewString()
	}
	if _, err := repo.Choices.InsertOne(ctx, choice); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return choice.ID, nil
}

func (repo *QuestionnaireMongoRepository) FindChoices(ctx context.Context, questionID string) ([]models.Choice, error) {
	filter := bson.M{"questionId": questionID}
	findOptions := options.Find().SetSort(bson.D{{Key: "sortId", Value: 1}})
	cursor, err := repo.Choices.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Choice
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return results, nil
}
