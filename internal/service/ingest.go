package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/metrics"
	"github.com/freteops/frete-service/internal/repository"
	"github.com/freteops/frete-service/internal/tabular"
)

// Column aliases accepted in uploaded spreadsheets. Headers are matched
// after tabular.NormalizeHeader, first alias present wins.
var (
	cepAliases            = []string{"cep", "ceo", "cep_destino", "cep_dest", "cep_origem"}
	ufAliases             = []string{"uf", "estado", "uf_destino", "uf_dest"}
	transportadoraAliases = []string{"transportadora", "empresa", "nome_transportadora", "transportadora_nome", "nome_empresa"}
	freteAliases          = []string{"frete", "valor_frete", "valor", "preco", "custo"}
	prazoAliases          = []string{"prazo", "prazo_entrega", "dias", "prazo_dias"}
	pedidoIDAliases       = []string{"pedido_id", "pedido", "id_pedido", "id"}
	clienteAliases        = []string{"cliente", "nome_cliente", "cliente_nome"}
)

func pickColumn(record map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := record[alias]; ok && v != "" {
			return v
		}
	}
	return ""
}

// normalizeCEP keeps only the digits of a postal code.
func normalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseFloatBR(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	// Brazilian spreadsheets use comma decimals.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

func parsePrazo(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	// "3 dias" and float-formatted cells still parse.
	f, err := parseFloatBR(strings.Fields(s)[0])
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// ParseFretes maps decoded spreadsheet records to freight quotes. Rows
// without a CEP or UF are silently dropped and counted, matching how the
// catalog uploads have always behaved; unparseable cost or lead time
// drops the row too.
func ParseFretes(records []map[string]string) (fretes []model.Frete, dropped int) {
	for _, record := range records {
		cep := normalizeCEP(pickColumn(record, cepAliases))
		uf := strings.ToUpper(strings.TrimSpace(pickColumn(record, ufAliases)))
		if cep == "" || uf == "" {
			dropped++
			continue
		}

		frete, err := parseFloatBR(pickColumn(record, freteAliases))
		if err != nil {
			dropped++
			continue
		}
		prazo, err := parsePrazo(pickColumn(record, prazoAliases))
		if err != nil {
			dropped++
			continue
		}

		transportadora := strings.TrimSpace(pickColumn(record, transportadoraAliases))
		if transportadora == "" {
			transportadora = model.TransportadoraNaoInformada
		}

		fretes = append(fretes, model.Frete{
			CEP:            cep,
			UF:             uf,
			Transportadora: transportadora,
			Frete:          frete,
			Prazo:          prazo,
			CreatedAt:      time.Now(),
		})
	}
	return fretes, dropped
}

// ParsePedidos maps decoded spreadsheet records to orders. Unlike the
// freight path, the first row missing a CEP or UF aborts the whole import
// with a row-numbered error: a silently half-loaded order book is worse
// than a rejected upload. Missing order ids fall back to PED-<row>.
func ParsePedidos(records []map[string]string) ([]model.Pedido, error) {
	pedidos := make([]model.Pedido, 0, len(records))
	for i, record := range records {
		// Row numbers are 1-based and count the header.
		rowNum := i + 2

		cep := normalizeCEP(pickColumn(record, cepAliases))
		uf := strings.ToUpper(strings.TrimSpace(pickColumn(record, ufAliases)))
		if cep == "" {
			return nil, &dto.ValidationError{Field: "cep", Message: fmt.Sprintf("linha %d: cep ausente", rowNum)}
		}
		if uf == "" {
			return nil, &dto.ValidationError{Field: "uf", Message: fmt.Sprintf("linha %d: uf ausente", rowNum)}
		}

		pedidoID := strings.TrimSpace(pickColumn(record, pedidoIDAliases))
		if pedidoID == "" {
			pedidoID = fmt.Sprintf("PED-%d", i+1)
		}

		pedidos = append(pedidos, model.Pedido{
			CEP:       cep,
			UF:        uf,
			PedidoID:  pedidoID,
			Cliente:   strings.TrimSpace(pickColumn(record, clienteAliases)),
			CreatedAt: time.Now(),
		})
	}
	return pedidos, nil
}

// IngestService loads uploaded workbooks into the store.
type IngestService struct {
	freteRepo  repository.FreteRepositoryInterface
	pedidoRepo repository.PedidoRepositoryInterface
}

// NewIngestService creates an ingestion service.
func NewIngestService(freteRepo repository.FreteRepositoryInterface, pedidoRepo repository.PedidoRepositoryInterface) *IngestService {
	return &IngestService{
		freteRepo:  freteRepo,
		pedidoRepo: pedidoRepo,
	}
}

// IngestFretes decodes a freight workbook and inserts the valid rows in
// chunks. Rows the parser drops are reported, not fatal. A failed chunk
// aborts the import; rows from chunks already written stay in the store.
func (s *IngestService) IngestFretes(ctx context.Context, r io.Reader, filename string) (*dto.UploadResponse, error) {
	records, err := tabular.DecodeWorkbook(r)
	if err != nil {
		return nil, err
	}

	fretes, dropped := ParseFretes(records)
	inserted, err := s.freteRepo.InsertBatch(ctx, fretes)
	metrics.RecordIngestRows("frete", "inserted", inserted)
	metrics.RecordIngestRows("frete", "dropped", dropped)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	log.Info().
		Str("batch_id", batchID).
		Str("filename", filename).
		Int("rows_read", len(records)).
		Int("rows_dropped", dropped).
		Int("rows_inserted", inserted).
		Msg("Freight workbook ingested")

	return &dto.UploadResponse{
		BatchID:      batchID,
		Filename:     filename,
		RowsRead:     len(records),
		RowsDropped:  dropped,
		RowsInserted: inserted,
	}, nil
}

// IngestPedidos decodes an order workbook and inserts the rows in chunks.
// Any invalid row aborts the import before anything is written.
func (s *IngestService) IngestPedidos(ctx context.Context, r io.Reader, filename string) (*dto.UploadResponse, error) {
	records, err := tabular.DecodeWorkbook(r)
	if err != nil {
		return nil, err
	}

	pedidos, err := ParsePedidos(records)
	if err != nil {
		return nil, err
	}

	inserted, err := s.pedidoRepo.InsertBatch(ctx, pedidos)
	metrics.RecordIngestRows("pedido", "inserted", inserted)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	log.Info().
		Str("batch_id", batchID).
		Str("filename", filename).
		Int("rows_read", len(records)).
		Int("rows_inserted", inserted).
		Msg("Order workbook ingested")

	return &dto.UploadResponse{
		BatchID:      batchID,
		Filename:     filename,
		RowsRead:     len(records),
		RowsInserted: inserted,
	}, nil
}
