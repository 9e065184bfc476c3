package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
)

type ReportRepository struct {
	col *mongodrv.Collection
}

func NewReportRepository(client *mongodrv.Client, database, collection string) *ReportRepository {
	return &ReportRepository{col: client.Database(database).Collection(collection)}
}

// Save appends the report as a new document. Always an insert, never an
// update: repeated analyses of one URL accumulate independent documents.
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	_, err := r.col.InsertOne(ctx, reportDocument(rep))
	return err
}

// Latest returns up to limit reports ordered newest first.
func (r *ReportRepository) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Report
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, reportFromDocument(doc))
	}
	return out, cur.Err()
}

// reportDocument flattens the report into one document: the record's fields
// plus timestamp and url. The process-local report ID is not stored.
func reportDocument(rep *domain.Report) bson.M {
	doc := make(bson.M, len(rep.Record)+2)
	for k, v := range rep.Record {
		doc[k] = v
	}
	doc["timestamp"] = rep.Timestamp
	doc["url"] = rep.URL
	return doc
}

func reportFromDocument(doc bson.M) *domain.Report {
	rep := &domain.Report{Record: make(domain.Record, len(doc))}
	for k, v := range doc {
		switch k {
		case "_id":
			// store-assigned, not part of the record
		case "url":
			if s, ok := v.(string); ok {
				rep.URL = s
			}
		case "timestamp":
			rep.Timestamp = asFloat(v)
		default:
			rep.Record[k] = v
		}
	}
	return rep
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
