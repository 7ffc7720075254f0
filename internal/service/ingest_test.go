//go:build !integration

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/mocks"
	"github.com/freteops/frete-service/internal/tabular"
)

func TestNormalizeCEP(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"01310-100", "01310100"},
		{"  01310100 ", "01310100"},
		{"CEP 01310.100", "01310100"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeCEP(tt.input), "input %q", tt.input)
	}
}

func TestParseFloatBR(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"42.5", 42.5, false},
		{"42,5", 42.5, false},
		{"1.234,56", 1234.56, false},
		{"R$ 42,50", 42.5, false},
		{"R$1.000,00", 1000, false},
		{" 10 ", 10, false},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseFloatBR(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestParsePrazo(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"3", 3, false},
		{"", 0, false},
		{"3 dias", 3, false},
		{"2,0", 2, false},
		{"amanhã", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePrazo(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestParseFretes(t *testing.T) {
	records := []map[string]string{
		{"cep": "01310-100", "uf": "sp", "transportadora": "Rápido Sul", "frete": "R$ 42,50", "prazo": "3"},
		{"ceo": "30140071", "estado": "MG", "empresa": "TransLog BR", "valor_frete": "60,00", "prazo_entrega": "4 dias"},
		{"cep": "", "uf": "SP", "frete": "10", "prazo": "1"},
		{"cep": "01000001", "uf": "", "frete": "10", "prazo": "1"},
		{"cep": "01000002", "uf": "SP", "frete": "não sei", "prazo": "1"},
		{"cep": "01000003", "uf": "SP", "frete": "25,00", "prazo": ""},
	}

	fretes, dropped := ParseFretes(records)

	assert.Equal(t, 3, dropped, "missing cep, missing uf and bad cost all drop")
	require.Len(t, fretes, 3)

	assert.Equal(t, "01310100", fretes[0].CEP)
	assert.Equal(t, "SP", fretes[0].UF, "uf upper-cased")
	assert.Equal(t, 42.5, fretes[0].Frete)

	assert.Equal(t, "30140071", fretes[1].CEP, "aliased headers accepted")
	assert.Equal(t, 4, fretes[1].Prazo)

	assert.Equal(t, 0, fretes[2].Prazo, "empty lead time means immediate")
}

func TestParseFretes_BlankCarrier(t *testing.T) {
	fretes, dropped := ParseFretes([]map[string]string{
		{"cep": "01310100", "uf": "SP", "frete": "10", "prazo": "2"},
	})

	assert.Zero(t, dropped)
	require.Len(t, fretes, 1)
	assert.Equal(t, model.TransportadoraNaoInformada, fretes[0].Transportadora)
}

func TestParsePedidos(t *testing.T) {
	t.Run("valid rows with id fallback", func(t *testing.T) {
		records := []map[string]string{
			{"cep": "01310-100", "uf": "sp", "pedido_id": "A-1", "cliente": "ACME Ltda"},
			{"cep": "30140071", "uf": "MG"},
		}

		pedidos, err := ParsePedidos(records)

		require.NoError(t, err)
		require.Len(t, pedidos, 2)
		assert.Equal(t, "A-1", pedidos[0].PedidoID)
		assert.Equal(t, "ACME Ltda", pedidos[0].Cliente)
		assert.Equal(t, "PED-2", pedidos[1].PedidoID, "missing id falls back to the row position")
	})

	t.Run("missing cep aborts with the spreadsheet row number", func(t *testing.T) {
		records := []map[string]string{
			{"cep": "01310100", "uf": "SP"},
			{"cep": "", "uf": "SP"},
		}

		pedidos, err := ParsePedidos(records)

		assert.Nil(t, pedidos)
		var vErr *dto.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "cep", vErr.Field)
		assert.Contains(t, vErr.Message, "linha 3")
	})

	t.Run("missing uf aborts", func(t *testing.T) {
		records := []map[string]string{
			{"cep": "01310100", "uf": ""},
		}

		_, err := ParsePedidos(records)

		var vErr *dto.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "uf", vErr.Field)
		assert.Contains(t, vErr.Message, "linha 2")
	})
}

// buildWorkbook encodes a single-sheet workbook for ingestion tests.
func buildWorkbook(t *testing.T, header []string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	err := tabular.EncodeWorkbook(&buf, []tabular.Sheet{{Name: "Planilha1", Header: header, Rows: rows}})
	require.NoError(t, err)
	return &buf
}

func TestIngestService_IngestFretes(t *testing.T) {
	buf := buildWorkbook(t,
		[]string{"CEP", "UF", "Transportadora", "Frete", "Prazo"},
		[][]interface{}{
			{"01310-100", "SP", "Rápido Sul", "R$ 42,50", "3"},
			{"", "SP", "TransLog BR", "10", "1"},
		},
	)

	mockFreteRepo := new(mocks.MockFreteRepositoryInterface)
	mockFreteRepo.On("InsertBatch", mock.Anything, mock.AnythingOfType("[]model.Frete")).Return(1, nil)

	svc := NewIngestService(mockFreteRepo, new(mocks.MockPedidoRepositoryInterface))
	resp, err := svc.IngestFretes(context.Background(), buf, "fretes.xlsx")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.BatchID)
	assert.Equal(t, "fretes.xlsx", resp.Filename)
	assert.Equal(t, 2, resp.RowsRead)
	assert.Equal(t, 1, resp.RowsDropped)
	assert.Equal(t, 1, resp.RowsInserted)

	mockFreteRepo.AssertExpectations(t)
}

func TestIngestService_IngestFretes_InsertError(t *testing.T) {
	buf := buildWorkbook(t,
		[]string{"CEP", "UF", "Frete", "Prazo"},
		[][]interface{}{{"01310100", "SP", "10", "1"}},
	)

	mockFreteRepo := new(mocks.MockFreteRepositoryInterface)
	mockFreteRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(0, errors.New("connection reset"))

	svc := NewIngestService(mockFreteRepo, new(mocks.MockPedidoRepositoryInterface))
	resp, err := svc.IngestFretes(context.Background(), buf, "fretes.xlsx")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestIngestService_IngestPedidos(t *testing.T) {
	t.Run("valid workbook inserted", func(t *testing.T) {
		buf := buildWorkbook(t,
			[]string{"Pedido ID", "Cliente", "CEP", "UF"},
			[][]interface{}{
				{"A-1", "ACME Ltda", "01310-100", "SP"},
				{"", "Beta SA", "30140071", "MG"},
			},
		)

		mockPedidoRepo := new(mocks.MockPedidoRepositoryInterface)
		mockPedidoRepo.On("InsertBatch", mock.Anything, mock.AnythingOfType("[]model.Pedido")).Return(2, nil).Run(func(args mock.Arguments) {
			pedidos, _ := args.Get(1).([]model.Pedido)
			require.Len(t, pedidos, 2)
			assert.Equal(t, "A-1", pedidos[0].PedidoID)
			assert.Equal(t, "PED-2", pedidos[1].PedidoID)
		})

		svc := NewIngestService(new(mocks.MockFreteRepositoryInterface), mockPedidoRepo)
		resp, err := svc.IngestPedidos(context.Background(), buf, "pedidos.xlsx")

		require.NoError(t, err)
		assert.Equal(t, 2, resp.RowsRead)
		assert.Equal(t, 2, resp.RowsInserted)

		mockPedidoRepo.AssertExpectations(t)
	})

	t.Run("invalid row aborts before any insert", func(t *testing.T) {
		buf := buildWorkbook(t,
			[]string{"CEP", "UF"},
			[][]interface{}{
				{"01310100", "SP"},
				{"", "SP"},
			},
		)

		mockPedidoRepo := new(mocks.MockPedidoRepositoryInterface)

		svc := NewIngestService(new(mocks.MockFreteRepositoryInterface), mockPedidoRepo)
		resp, err := svc.IngestPedidos(context.Background(), buf, "pedidos.xlsx")

		assert.Error(t, err)
		assert.Nil(t, resp)
		mockPedidoRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	})
}

func TestIngestService_EmptyWorkbook(t *testing.T) {
	buf := buildWorkbook(t, nil, nil)

	svc := NewIngestService(new(mocks.MockFreteRepositoryInterface), new(mocks.MockPedidoRepositoryInterface))
	_, err := svc.IngestFretes(context.Background(), buf, "vazio.xlsx")

	assert.ErrorIs(t, err, tabular.ErrEmptyWorkbook)
}
