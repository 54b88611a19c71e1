package patients

import (
	"context"
	"errors"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const emailUniqueIndexName = "email_unique"

type PatientMongoRepository struct {
	Collection       *mongo.Collection
	DoctorCollection string
}

func NewPatientMongoRepository(db *mongo.Database, patientCollection, doctorCollection string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection:       db.Collection(patientCollection),
		DoctorCollection: doctorCollection,
	}
}

// EnsureIndexes creates the unique email index. It is idempotent and must run
// before the server accepts writes, since it is what makes concurrent creates
// with the same email fail.
func (repo *PatientMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailUniqueIndexName),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context) ([]models.PatientWithDoctor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: repo.DoctorCollection},
			{Key: "let", Value: bson.D{{Key: "doctorId", Value: "$assignedDoctor"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$doctorId"}}}}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}}}},
			}},
			{Key: "as", Value: "doctor"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$doctor"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.PatientWithDoctor, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

// Search matches key as literal text, case-insensitively, against name or
// email.
func (repo *PatientMongoRepository) Search(ctx context.Context, key string) ([]models.Patient, error) {
	cursor, err := repo.Collection.Find(ctx, searchFilter(key))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func searchFilter(key string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(key), Options: "i"}
	return bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": pattern}},
			{"email": bson.M{"$regex": pattern}},
		},
	}
}

func (repo *PatientMongoRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update applies changes and returns the stored document after the write, or
// nil when no patient has patientID.
func (repo *PatientMongoRepository) Update(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Patient
	err = repo.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		changes.ToUpdateDocument(time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return 0, nil
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
