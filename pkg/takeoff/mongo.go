package takeoff

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
)

// Defaults for the MongoDB sink.
const (
	DefaultDatabase   = "ifcwalk"
	DefaultCollection = "takeoff"
)

// MongoOptions configures the MongoDB export sink.
type MongoOptions struct {
	// URI is the MongoDB connection string (mongodb://...).
	URI string

	// Database and Collection name the row target. Zero values fall back to
	// DefaultDatabase and DefaultCollection. The run descriptor goes to
	// "<Collection>_runs" in the same database.
	Database   string
	Collection string
}

func (o *MongoOptions) setDefaults() error {
	if o.URI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "MongoDB URI is required")
	}
	if o.Database == "" {
		o.Database = DefaultDatabase
	}
	if o.Collection == "" {
		o.Collection = DefaultCollection
	}
	return nil
}

// Export inserts one document per table row plus a run descriptor naming the
// source file, root class and row count.
func Export(ctx context.Context, t *Table, source string, opts MongoOptions) error {
	if err := opts.setDefaults(); err != nil {
		return err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "MongoDB is not reachable")
	}

	db := client.Database(opts.Database)
	if len(t.Rows) > 0 {
		docs := make([]interface{}, 0, len(t.Rows))
		for _, row := range t.Rows {
			doc := bson.M{}
			for i, col := range t.Columns {
				doc[col] = row[i]
			}
			docs = append(docs, doc)
		}
		if _, err := db.Collection(opts.Collection).InsertMany(ctx, docs); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "failed to insert takeoff rows")
		}
	}

	run := bson.M{
		"source":     source,
		"class":      t.Class,
		"columns":    t.Columns,
		"rows":       len(t.Rows),
		"exportedAt": time.Now().UTC(),
	}
	if _, err := db.Collection(opts.Collection + "_runs").InsertOne(ctx, run); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to record takeoff run")
	}
	return nil
}
