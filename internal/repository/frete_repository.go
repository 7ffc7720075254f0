// Package repository provides data access for freight quotes.
package repository

import (
	"context"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

// FreteRepository provides methods for freight quote operations.
type FreteRepository struct {
	collection *mongo.Collection
	chunkSize  int
}

// NewFreteRepository creates a new freight quote repository.
// chunkSize bounds the size of each InsertMany call; values below 1
// fall back to a single chunk.
func NewFreteRepository(db *MongoDB, chunkSize int) *FreteRepository {
	return &FreteRepository{
		collection: db.Fretes,
		chunkSize:  chunkSize,
	}
}

// substringRegex builds a case-insensitive contains-match with regex
// metacharacters escaped, the Mongo equivalent of SQL ilike '%term%'.
func substringRegex(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// buildFilter translates a FreteFilter into a Mongo query document.
func buildFilter(filter dto.FreteFilter) bson.M {
	query := bson.M{}
	if len(filter.UFs) > 0 {
		query["uf"] = bson.M{"$in": filter.UFs}
	}
	if len(filter.Transportadoras) > 0 {
		query["transportadora"] = bson.M{"$in": filter.Transportadoras}
	}
	if filter.CEP != "" {
		query["cep"] = substringRegex(filter.CEP)
	}
	if filter.FreteMin != nil || filter.FreteMax != nil {
		rangeDoc := bson.M{}
		if filter.FreteMin != nil {
			rangeDoc["$gte"] = *filter.FreteMin
		}
		if filter.FreteMax != nil {
			rangeDoc["$lte"] = *filter.FreteMax
		}
		query["frete"] = rangeDoc
	}
	if filter.PrazoMin != nil || filter.PrazoMax != nil {
		rangeDoc := bson.M{}
		if filter.PrazoMin != nil {
			rangeDoc["$gte"] = *filter.PrazoMin
		}
		if filter.PrazoMax != nil {
			rangeDoc["$lte"] = *filter.PrazoMax
		}
		query["prazo"] = rangeDoc
	}
	return query
}

// sortOptions translates an optional Sort into find options.
func sortOptions(s *dto.Sort) *options.FindOptions {
	opts := options.Find()
	if s != nil && s.Field != "" {
		order := 1
		if s.Descending() {
			order = -1
		}
		opts.SetSort(bson.D{{Key: s.Field, Value: order}})
	}
	return opts
}

// ListWithFilters returns the freight quotes matching the filter, optionally sorted.
func (r *FreteRepository) ListWithFilters(ctx context.Context, filter dto.FreteFilter, s *dto.Sort) ([]model.Frete, error) {
	cursor, err := r.collection.Find(ctx, buildFilter(filter), sortOptions(s))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var fretes []model.Frete
	if err := cursor.All(ctx, &fretes); err != nil {
		return nil, err
	}
	return fretes, nil
}

// ListByCEP returns all quotes whose CEP matches exactly.
func (r *FreteRepository) ListByCEP(ctx context.Context, cep string) ([]model.Frete, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"cep": cep})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var fretes []model.Frete
	if err := cursor.All(ctx, &fretes); err != nil {
		return nil, err
	}
	return fretes, nil
}

// DistinctUFs returns the sorted set of states present in the store.
func (r *FreteRepository) DistinctUFs(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "uf")
}

// DistinctTransportadoras returns the sorted set of carrier names present in the store.
func (r *FreteRepository) DistinctTransportadoras(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "transportadora")
}

func (r *FreteRepository) distinctStrings(ctx context.Context, field string) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

// InsertBatch inserts quotes in sequential chunks and returns the number
// inserted. A chunk failure aborts the remainder; chunks already written
// stay committed.
func (r *FreteRepository) InsertBatch(ctx context.Context, fretes []model.Frete) (int, error) {
	inserted := 0
	for _, chunk := range chunkFretes(fretes, r.chunkSize) {
		docs := make([]interface{}, len(chunk))
		for i, f := range chunk {
			docs[i] = f
		}
		res, err := r.collection.InsertMany(ctx, docs)
		if res != nil {
			inserted += len(res.InsertedIDs)
		}
		if err != nil {
			return inserted, err
		}
	}
	return inserted, nil
}

func chunkFretes(fretes []model.Frete, size int) [][]model.Frete {
	if size < 1 {
		size = len(fretes)
		if size == 0 {
			return nil
		}
	}
	var chunks [][]model.Frete
	for start := 0; start < len(fretes); start += size {
		end := start + size
		if end > len(fretes) {
			end = len(fretes)
		}
		chunks = append(chunks, fretes[start:end])
	}
	return chunks
}

// DeleteByUF removes every quote for the given state and returns the count removed.
func (r *FreteRepository) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"uf": uf})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByTransportadora removes every quote for the given carrier and
// returns the count removed.
func (r *FreteRepository) DeleteByTransportadora(ctx context.Context, transportadora string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"transportadora": transportadora})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SummaryByUF groups quotes by state on the server and returns per-state
// destination counts and cost/lead-time means.
func (r *FreteRepository) SummaryByUF(ctx context.Context) ([]model.FreteSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$uf",
			"qtd_ceps":    bson.M{"$sum": 1},
			"media_frete": bson.M{"$avg": "$frete"},
			"media_prazo": bson.M{"$avg": "$prazo"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         0,
			"uf":          "$_id",
			"qtd_ceps":    1,
			"media_frete": 1,
			"media_prazo": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var summaries []model.FreteSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// SummaryByTransportadora groups quotes by carrier on the server. The UF
// set per carrier is sorted after decoding; $addToSet gives no ordering
// guarantee.
func (r *FreteRepository) SummaryByTransportadora(ctx context.Context) ([]model.TransportadoraSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         bson.M{"$ifNull": bson.A{"$transportadora", model.TransportadoraNaoInformada}},
			"qtd_ceps":    bson.M{"$sum": 1},
			"media_frete": bson.M{"$avg": "$frete"},
			"media_prazo": bson.M{"$avg": "$prazo"},
			"ufs":         bson.M{"$addToSet": "$uf"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            0,
			"transportadora": "$_id",
			"qtd_ceps":       1,
			"media_frete":    1,
			"media_prazo":    1,
			"ufs":            1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var summaries []model.TransportadoraSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	for i := range summaries {
		if summaries[i].Transportadora == "" {
			summaries[i].Transportadora = model.TransportadoraNaoInformada
		}
		sort.Strings(summaries[i].UFs)
	}
	return summaries, nil
}
