package mongo

import (
	"context"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type profileRepository struct {
	sessionBinder
	coll *mongo.Collection
}

// NewProfileRepository returns the MongoDB-backed profile repository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{coll: db.Collection(profilesCollection)}
}

func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: accountID.String()}}, "failed to find profile by account id")
}

func (repo *profileRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.D{{Key: "national_id", Value: nationalID}}, "failed to find profile by national id")
}

func (repo *profileRepository) findOne(ctx context.Context, filter bson.D, msg string) (*entity.Profile, error) {
	var doc profileDocument
	if err := repo.coll.FindOne(repo.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return doc.toDomain()
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if _, err := repo.coll.InsertOne(repo.bind(ctx), fromProfileDomain(profile)); err != nil {
		return translateWriteError(err, "failed to create profile")
	}

	return nil
}
