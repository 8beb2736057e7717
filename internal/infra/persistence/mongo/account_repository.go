package mongo

import (
	"context"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountRepository struct {
	sessionBinder
	coll *mongo.Collection
}

// NewAccountRepository returns the MongoDB-backed account repository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{coll: db.Collection(accountsCollection)}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, "failed to find account by id")
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to find account by email")
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.D, msg string) (*entity.Account, error) {
	var doc accountDocument
	if err := repo.coll.FindOne(repo.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return doc.toDomain()
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if _, err := repo.coll.InsertOne(repo.bind(ctx), fromAccountDomain(account)); err != nil {
		return translateWriteError(err, "failed to create account")
	}

	return nil
}

func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	ctx = repo.bind(ctx)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts")
	}

	accounts := make([]*entity.Account, 0, len(docs))
	for i := range docs {
		account, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}
