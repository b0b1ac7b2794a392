// Package repositories holds thin data-access wrappers, one per Mongo
// collection.
//
// The query layer is deliberately narrow: every find filters on at most
// one field with an equality match and never sorts server-side. Sorting
// and multi-criterion filtering happen in memory after the fetch (see the
// pagination package). Scans are bounded; a result set larger than the
// configured cap is an error, never a silent truncation.
package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prompt-hub/config"
	"prompt-hub/errs"
)

// scanBound returns the configured cap on materialized documents.
func scanBound() int {
	return config.GetConfig().Catalog.MaxScanDocs
}

// findAll runs a single-field equality query (or a full scan for an empty
// filter) and decodes every matching document, erroring past the bound.
func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]T, error) {
	bound := scanBound()
	opts := options.Find().SetLimit(int64(bound + 1))
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	var results []T
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		results = append(results, doc)
		if len(results) > bound {
			return nil, fmt.Errorf("%s: %w", col.Name(), errs.ErrTooManyResults)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", col.Name(), err)
	}
	return results, nil
}

// wrapWriteErr maps duplicate-key violations on the unique slug index to
// the typed slug-taken error.
func wrapWriteErr(col *mongo.Collection, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", col.Name(), errs.ErrSlugTaken)
	}
	return fmt.Errorf("write %s: %w", col.Name(), err)
}
