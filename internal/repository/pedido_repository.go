// Package repository provides data access for orders.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

// PedidoRepository provides methods for order operations.
type PedidoRepository struct {
	collection *mongo.Collection
	chunkSize  int
}

// NewPedidoRepository creates a new order repository.
func NewPedidoRepository(db *MongoDB, chunkSize int) *PedidoRepository {
	return &PedidoRepository{
		collection: db.Pedidos,
		chunkSize:  chunkSize,
	}
}

func buildPedidoFilter(filter dto.PedidoFilter) bson.M {
	query := bson.M{}
	if len(filter.UFs) > 0 {
		query["uf"] = bson.M{"$in": filter.UFs}
	}
	if filter.CEP != "" {
		query["cep"] = substringRegex(filter.CEP)
	}
	if filter.Cliente != "" {
		query["cliente"] = substringRegex(filter.Cliente)
	}
	return query
}

// ListWithFilters returns the orders matching the filter, optionally sorted.
func (r *PedidoRepository) ListWithFilters(ctx context.Context, filter dto.PedidoFilter, s *dto.Sort) ([]model.Pedido, error) {
	cursor, err := r.collection.Find(ctx, buildPedidoFilter(filter), sortOptions(s))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var pedidos []model.Pedido
	if err := cursor.All(ctx, &pedidos); err != nil {
		return nil, err
	}
	return pedidos, nil
}

// InsertBatch inserts orders in sequential chunks and returns the number
// inserted. Same contract as the freight repository: a chunk failure
// aborts the remainder, committed chunks stay.
func (r *PedidoRepository) InsertBatch(ctx context.Context, pedidos []model.Pedido) (int, error) {
	size := r.chunkSize
	if size < 1 {
		size = len(pedidos)
	}
	inserted := 0
	for start := 0; start < len(pedidos); start += size {
		end := start + size
		if end > len(pedidos) {
			end = len(pedidos)
		}
		docs := make([]interface{}, 0, end-start)
		for _, p := range pedidos[start:end] {
			docs = append(docs, p)
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

// DeleteByUF removes every order for the given state and returns the count removed.
func (r *PedidoRepository) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"uf": uf})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll removes every order and returns the count removed.
func (r *PedidoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
