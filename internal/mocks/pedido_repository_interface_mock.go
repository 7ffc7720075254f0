// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

type MockPedidoRepositoryInterface struct {
	mock.Mock
}

func (m *MockPedidoRepositoryInterface) ListWithFilters(ctx context.Context, filter dto.PedidoFilter, s *dto.Sort) ([]model.Pedido, error) {
	args := m.Called(ctx, filter, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pedido), args.Error(1)
}

func (m *MockPedidoRepositoryInterface) InsertBatch(ctx context.Context, pedidos []model.Pedido) (int, error) {
	args := m.Called(ctx, pedidos)
	return args.Int(0), args.Error(1)
}

func (m *MockPedidoRepositoryInterface) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	args := m.Called(ctx, uf)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockPedidoRepositoryInterface) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
