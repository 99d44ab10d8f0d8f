package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pfaswatch/zipcheck/internal/core/domain"
)

const fetchTimeout = 30 * time.Second

// RecordRepository reads the contamination reference data from MongoDB.
//
// The upstream collection is curated by a data-ingestion pipeline outside this
// service. Each document describes one contamination site and carries a
// "ZIP Codes" field that is either an array of values or a single
// semicolon-separated string; this repository flattens both shapes into one
// ContaminationRecord per zip.
type RecordRepository struct {
	col *mongo.Collection
}

func NewRecordRepository(db *mongo.Database, collection string) *RecordRepository {
	return &RecordRepository{col: db.Collection(collection)}
}

type siteDoc struct {
	Source   string      `bson:"source,omitempty"`
	ZipCodes interface{} `bson:"ZIP Codes"`
}

// FetchAll returns every zip code in the collection, raw and unnormalized.
func (r *RecordRepository) FetchAll(ctx context.Context) ([]domain.ContaminationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.ContaminationRecord
	for cur.Next(ctx) {
		var doc siteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("fetch records: decode: %w", err)
		}
		for _, zip := range flattenZips(doc.ZipCodes) {
			records = append(records, domain.ContaminationRecord{ZipCode: zip, Source: doc.Source})
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("fetch records: cursor: %w", err)
	}

	return records, nil
}

// flattenZips turns the array-or-string "ZIP Codes" field into a flat slice.
// Empty cells and the literal "nan" (spreadsheet export artifact) are dropped.
func flattenZips(field interface{}) []string {
	var raw []string
	switch v := field.(type) {
	case primitive.A:
		for _, elem := range v {
			raw = append(raw, fmt.Sprint(elem))
		}
	case string:
		raw = strings.Split(v, ";")
	case nil:
		return nil
	default:
		raw = []string{fmt.Sprint(v)}
	}

	zips := make([]string, 0, len(raw))
	for _, z := range raw {
		z = strings.TrimSpace(z)
		if z == "" || strings.EqualFold(z, "nan") {
			continue
		}
		zips = append(zips, z)
	}
	return zips
}
