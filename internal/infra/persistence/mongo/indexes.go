package mongo

import (
	"context"
	"strings"

	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/errors"
	"dashkeep/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Unique indexes share their names with the SQL constraints so both backends
// attribute duplicates the same way.
var uniqueIndexes = map[string]mongo.IndexModel{
	accountsCollection: {
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName(model.ConstraintAccountEmail).SetUnique(true),
	},
	profilesCollection: {
		Keys:    bson.D{{Key: "national_id", Value: 1}},
		Options: options.Index().SetName(model.ConstraintProfileNationalID).SetUnique(true),
	},
	dashboardsCollection: {
		Keys:    bson.D{{Key: "owner_id", Value: 1}},
		Options: options.Index().SetName(model.ConstraintDashboardOwner).SetUnique(true),
	},
}

var duplicateIndexErrors = map[string]*domainerrors.BaseError{
	model.ConstraintAccountEmail:      domainerrors.ErrDuplicateEmail,
	model.ConstraintProfileNationalID: domainerrors.ErrDuplicateNationalID,
}

// EnsureIndexes creates the unique indexes. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, index := range uniqueIndexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return errors.Wrapf(err, "failed to create index on %s", collection)
		}
	}

	return nil
}

// duplicateIndexName extracts the index name from an E11000 write error.
func duplicateIndexName(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, writeErr := range we.WriteErrors {
			if name := indexFromMessage(writeErr.Message); name != "" {
				return name
			}
		}
	}

	return indexFromMessage(err.Error())
}

func indexFromMessage(msg string) string {
	const marker = "index: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}

	return rest
}

// translateWriteError maps a failed insert or update to a domain error.
func translateWriteError(err error, details string) error {
	if mongo.IsDuplicateKeyError(err) {
		index := duplicateIndexName(err)
		if mapped, ok := duplicateIndexErrors[index]; ok {
			return mapped.WrapMessage(details)
		}

		return errors.Wrapf(domainerrors.ErrConflict, "%s: unique index %q", details, index)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
