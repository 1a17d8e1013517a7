package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/domain"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/stock"
	"github.com/jhoicas/restaurante-stock-api/pkg/clock"
)

// TransferUseCase traslada materias primas de una bodega a una cocina o
// restaurante: débito en origen, crédito en destino y fila de log, como una
// sola unidad atómica.
type TransferUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository // lecturas sin bloqueo
	materialRepo repository.RawMaterialRepository
	clk          clock.Clock
}

// NewTransferUseCase construye el caso de uso de traslados.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	materialRepo repository.RawMaterialRepository,
	clk clock.Clock,
) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, transferRepo: transferRepo, materialRepo: materialRepo, clk: clk}
}

// TransferItem una materia prima dentro de un evento de traslado.
type TransferItem struct {
	RawMaterialID int64
	Quantity      decimal.Decimal
	Unit          string
}

// TransferInput entrada del traslado. GroupID vacío = se acuña uno nuevo;
// todas las filas del evento comparten el mismo identificador de grupo.
type TransferInput struct {
	SourceStoreroomID int64
	Destination       entity.Location
	GroupID           string
	Items             []TransferItem
}

// Transfer ejecuta el traslado completo en una transacción: por cada materia,
// débito del registro de la bodega origen y crédito del registro destino,
// más la fila de log con timestamp asignado por el servidor. Las claves se
// bloquean en orden determinista de materia prima para evitar deadlocks.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) ([]*entity.TransferEntry, error) {
	if in.SourceStoreroomID <= 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.Destination.Valid() || in.Destination.Type == entity.LocationStoreroom {
		return nil, domain.ErrInvalidInput
	}

	items := append([]TransferItem(nil), in.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].RawMaterialID < items[j].RawMaterialID })

	materials := make(map[int64]*entity.RawMaterial, len(items))
	for _, it := range items {
		if it.RawMaterialID <= 0 || !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		m, err := uc.materialRepo.GetByID(ctx, it.RawMaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil || m.IsDeleted {
			return nil, domain.ErrUnknownMaterial
		}
		materials[it.RawMaterialID] = m
	}

	groupID := in.GroupID
	if groupID == "" {
		groupID = uuid.New().String()
	}
	source := entity.Location{Type: entity.LocationStoreroom, ID: in.SourceStoreroomID}
	now := uc.clk.Now()

	entries := make([]*entity.TransferEntry, 0, len(items))
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		for _, it := range items {
			qty, metric := stock.Normalize(it.Quantity, it.Unit)

			origin, err := lockRecord(ctx, r, source, it.RawMaterialID, materials[it.RawMaterialID], metric)
			if err != nil {
				return err
			}
			if err := origin.Debit(qty, false); err != nil {
				return err
			}
			if err := r.Stock.Upsert(ctx, origin); err != nil {
				return err
			}

			dest, err := lockRecord(ctx, r, in.Destination, it.RawMaterialID, materials[it.RawMaterialID], metric)
			if err != nil {
				return err
			}
			dest.Credit(qty)
			if err := r.Stock.Upsert(ctx, dest); err != nil {
				return err
			}

			entry := &entity.TransferEntry{
				TransferGroupID:   groupID,
				RawMaterialID:     it.RawMaterialID,
				Quantity:          qty,
				Metric:            metric,
				SourceStoreroomID: in.SourceStoreroomID,
				Destination:       in.Destination,
				TransferredAt:     now,
			}
			if err := r.Transfers.Create(ctx, entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Modos especiales del reporte de traslados.
const (
	ReportModeAll   = "all"
	ReportModeTotal = "total"
)

// Report consulta el log de traslados. mode puede ser "all" (todas las filas
// del destino en la fecha), "total" (suma por materia prima) o un id de grupo
// concreto.
func (uc *TransferUseCase) Report(ctx context.Context, sourceStoreroomID int64, dest entity.Location, date time.Time, mode string) ([]repository.TransferReportRow, error) {
	if sourceStoreroomID <= 0 || !dest.Valid() {
		return nil, domain.ErrInvalidInput
	}
	f := repository.TransferFilter{
		SourceStoreroomID: sourceStoreroomID,
		Destination:       dest,
		Date:              clock.DateOnly(date),
	}
	switch mode {
	case ReportModeTotal:
		return uc.transferRepo.ReportTotals(ctx, f)
	case ReportModeAll, "":
		return uc.transferRepo.Report(ctx, f)
	default:
		f.GroupID = mode
		return uc.transferRepo.Report(ctx, f)
	}
}

// History lista todos los traslados de una fecha, sin filtrar por destino.
func (uc *TransferUseCase) History(ctx context.Context, date time.Time) ([]repository.TransferReportRow, error) {
	return uc.transferRepo.ListByDate(ctx, clock.DateOnly(date))
}

// ListByGroup devuelve las filas crudas de un grupo de traslado.
func (uc *TransferUseCase) ListByGroup(ctx context.Context, groupID string) ([]*entity.TransferEntry, error) {
	if groupID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.transferRepo.ListByGroup(ctx, groupID)
}
