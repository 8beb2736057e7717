package mongo

import (
	"context"
	"encoding/json"
	"time"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type dashboardRepository struct {
	sessionBinder
	coll *mongo.Collection
	now  func() time.Time
}

// NewDashboardRepository returns the MongoDB-backed dashboard repository.
func NewDashboardRepository(db *mongo.Database) repository.DashboardRepository {
	return &dashboardRepository{coll: db.Collection(dashboardsCollection), now: time.Now}
}

func ownerFilter(ownerID uuid.UUID) bson.D {
	return bson.D{{Key: "owner_id", Value: ownerID.String()}}
}

// GetOrCreate upserts with $setOnInsert only, so an existing document is never
// touched. owner_id is populated from the equality filter on insert.
func (repo *dashboardRepository) GetOrCreate(ctx context.Context, ownerID uuid.UUID, defaults json.RawMessage) (*entity.Dashboard, bool, error) {
	ctx = repo.bind(ctx)
	now := repo.now().UTC()
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "_id", Value: uuid.NewString()},
		{Key: "data", Value: string(defaults)},
		{Key: "last_updated", Value: now},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	}}}

	created, err := repo.upsert(ctx, ownerID, update)
	if err != nil {
		return nil, false, translateWriteError(err, "failed to create dashboard")
	}

	dashboard, err := repo.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	return dashboard, created, nil
}

func (repo *dashboardRepository) Upsert(ctx context.Context, ownerID uuid.UUID, data json.RawMessage) (*entity.Dashboard, bool, error) {
	ctx = repo.bind(ctx)
	now := repo.now().UTC()
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "data", Value: string(data)},
			{Key: "last_updated", Value: now},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: uuid.NewString()},
			{Key: "created_at", Value: now},
		}},
	}

	created, err := repo.upsert(ctx, ownerID, update)
	if err != nil {
		return nil, false, translateWriteError(err, "failed to upsert dashboard")
	}

	dashboard, err := repo.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	return dashboard, created, nil
}

// upsert retries once on a duplicate key: two concurrent upserts may both miss
// the filter, and the loser then matches the winner's document.
func (repo *dashboardRepository) upsert(ctx context.Context, ownerID uuid.UUID, update bson.D) (bool, error) {
	opts := options.Update().SetUpsert(true)

	res, err := repo.coll.UpdateOne(ctx, ownerFilter(ownerID), update, opts)
	if mongo.IsDuplicateKeyError(err) {
		res, err = repo.coll.UpdateOne(ctx, ownerFilter(ownerID), update, opts)
	}
	if err != nil {
		return false, err
	}

	return res.UpsertedCount == 1, nil
}

func (repo *dashboardRepository) Delete(ctx context.Context, ownerID uuid.UUID) error {
	res, err := repo.coll.DeleteOne(repo.bind(ctx), ownerFilter(ownerID))
	if err != nil {
		return errors.Wrap(err, "failed to delete dashboard")
	}
	if res.DeletedCount == 0 {
		return repository.ErrDashboardNotFound
	}

	return nil
}

func (repo *dashboardRepository) findByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Dashboard, error) {
	var doc dashboardDocument
	if err := repo.coll.FindOne(ctx, ownerFilter(ownerID)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDashboardNotFound
		}

		return nil, errors.Wrap(err, "failed to find dashboard")
	}

	return doc.toDomain()
}
