package mongo

import (
	"context"

	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactionManager struct {
	db *mongo.Database
}

// mongoRepositoryFactory hands out repositories bound to one session.
type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

func (f *mongoRepositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{
		sessionBinder: sessionBinder{session: f.session},
		coll:          f.db.Collection(accountsCollection),
	}
}

func (f *mongoRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{
		sessionBinder: sessionBinder{session: f.session},
		coll:          f.db.Collection(profilesCollection),
	}
}

func (f *mongoRepositoryFactory) DashboardRepo() repository.DashboardRepository {
	repo := NewDashboardRepository(f.db).(*dashboardRepository)
	repo.session = f.session

	return repo
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs fn inside a multi-document transaction. The driver retries
// the callback on transient transaction errors.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{db: tm.db, session: session}
	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})

	return err
}
