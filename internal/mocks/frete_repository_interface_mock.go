// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

type MockFreteRepositoryInterface struct {
	mock.Mock
}

func (m *MockFreteRepositoryInterface) ListWithFilters(ctx context.Context, filter dto.FreteFilter, s *dto.Sort) ([]model.Frete, error) {
	args := m.Called(ctx, filter, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Frete), args.Error(1)
}

func (m *MockFreteRepositoryInterface) ListByCEP(ctx context.Context, cep string) ([]model.Frete, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Frete), args.Error(1)
}

func (m *MockFreteRepositoryInterface) DistinctUFs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFreteRepositoryInterface) DistinctTransportadoras(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFreteRepositoryInterface) InsertBatch(ctx context.Context, fretes []model.Frete) (int, error) {
	args := m.Called(ctx, fretes)
	return args.Int(0), args.Error(1)
}

func (m *MockFreteRepositoryInterface) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	args := m.Called(ctx, uf)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockFreteRepositoryInterface) DeleteByTransportadora(ctx context.Context, transportadora string) (int64, error) {
	args := m.Called(ctx, transportadora)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockFreteRepositoryInterface) SummaryByUF(ctx context.Context) ([]model.FreteSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FreteSummary), args.Error(1)
}

func (m *MockFreteRepositoryInterface) SummaryByTransportadora(ctx context.Context) ([]model.TransportadoraSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TransportadoraSummary), args.Error(1)
}
