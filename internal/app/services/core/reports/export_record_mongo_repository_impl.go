package reports

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exportRecordCollection = "export_records"

var (
	exportRecordRepositoryInstance contracts.ExportRecordRepository
	onceExportRecordRepository     sync.Once
)

type exportRecordMongoRepository struct {
	collection *mongo.Collection
}

func NewExportRecordMongoRepository(db *mongo.Database) contracts.ExportRecordRepository {
	onceExportRecordRepository.Do(func() {
		exportRecordRepositoryInstance = &exportRecordMongoRepository{
			collection: db.Collection(exportRecordCollection),
		}
	})
	return exportRecordRepositoryInstance
}

func (r *exportRecordMongoRepository) Insert(ctx context.Context, record *models.ExportRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindAll returns the export history, newest first.
func (r *exportRecordMongoRepository) FindAll(ctx context.Context) ([]models.ExportRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "exported_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.ExportRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return records, nil
}
