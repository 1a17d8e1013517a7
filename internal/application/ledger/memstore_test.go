package ledger_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/repository"
)

// Fakes en memoria para los puertos del motor. El runner de transacciones
// trabaja sobre una copia del estado y la promueve solo si fn devuelve nil,
// reproduciendo commit/rollback; un mutex global serializa las transacciones
// igual que lo harían los bloqueos de fila en la BD.

type stockKey struct {
	locType  entity.LocationType
	locID    int64
	material int64
}

type consumptionKey struct {
	material int64
	date     string // YYYY-MM-DD
	locType  entity.LocationType
	locID    int64
}

type preparedKey struct {
	dish    int64
	kitchen int64
	date    string
}

type memState struct {
	records     map[stockKey]entity.StockRecord
	thresholds  map[stockKey]entity.MinimumStockThreshold
	consumption map[consumptionKey]entity.ConsumptionEntry
	transfers   []entity.TransferEntry
	purchases   []entity.PurchaseEntry
	prepared    map[preparedKey]entity.KitchenPreparedDish
	prepTx      []entity.PreparedDishTransfer

	materials map[int64]entity.RawMaterial
	dishes    map[int64]entity.Dish
	recipes   map[int64][]entity.DishRecipeRow
	vendors   map[int64]entity.Vendor
}

func newMemState() *memState {
	return &memState{
		records:     map[stockKey]entity.StockRecord{},
		thresholds:  map[stockKey]entity.MinimumStockThreshold{},
		consumption: map[consumptionKey]entity.ConsumptionEntry{},
		prepared:    map[preparedKey]entity.KitchenPreparedDish{},
		materials:   map[int64]entity.RawMaterial{},
		dishes:      map[int64]entity.Dish{},
		recipes:     map[int64][]entity.DishRecipeRow{},
		vendors:     map[int64]entity.Vendor{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.records {
		c.records[k] = v
	}
	for k, v := range s.thresholds {
		c.thresholds[k] = v
	}
	for k, v := range s.consumption {
		c.consumption[k] = v
	}
	c.transfers = append(c.transfers, s.transfers...)
	c.purchases = append(c.purchases, s.purchases...)
	for k, v := range s.prepared {
		c.prepared[k] = v
	}
	c.prepTx = append(c.prepTx, s.prepTx...)
	for k, v := range s.materials {
		c.materials[k] = v
	}
	for k, v := range s.dishes {
		c.dishes[k] = v
	}
	for k, v := range s.recipes {
		c.recipes[k] = append([]entity.DishRecipeRow(nil), v...)
	}
	for k, v := range s.vendors {
		c.vendors[k] = v
	}
	return c
}

type memDB struct {
	mu    sync.Mutex
	state *memState
}

func newMemDB() *memDB {
	return &memDB{state: newMemState()}
}

// Run serializa las transacciones con un mutex (equivalente grueso del
// SELECT FOR UPDATE) y promueve la copia solo si fn no falla.
func (db *memDB) Run(_ context.Context, fn func(r ledger.TxRepos) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	staging := db.state.clone()
	repos := txRepos(staging)
	if err := fn(repos); err != nil {
		return err
	}
	db.state = staging
	return nil
}

func txRepos(s *memState) ledger.TxRepos {
	return ledger.TxRepos{
		Stock:       &memStockRepo{s: s},
		Transfers:   &memTransferRepo{s: s},
		Consumption: &memConsumptionRepo{s: s},
		Purchases:   &memPurchaseRepo{s: s},
		Thresholds:  &memThresholdRepo{s: s},
		Prepared:    &memPreparedRepo{s: s},
	}
}

// Repos de lectura fuera de transacción (mismo estado vivo, con lock).

func (db *memDB) stockRepo() repository.StockRecordRepository {
	return &lockedStockRepo{db: db}
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

// ── StockRecordRepository ────────────────────────────────────────────────────

type memStockRepo struct{ s *memState }

func (r *memStockRepo) Get(_ context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	k := stockKey{loc.Type, loc.ID, materialID}
	if rec, ok := r.s.records[k]; ok {
		cp := rec
		return &cp, nil
	}
	return entity.NewStockRecord(loc, materialID, ""), nil
}

func (r *memStockRepo) GetForUpdate(ctx context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	rec, err := r.Get(ctx, loc, materialID)
	if err != nil {
		return nil, err
	}
	// Contrato del puerto: la clave queda materializada bajo el candado.
	r.s.records[stockKey{loc.Type, loc.ID, materialID}] = *rec
	return rec, nil
}

func (r *memStockRepo) Upsert(_ context.Context, rec *entity.StockRecord) error {
	k := stockKey{rec.Location.Type, rec.Location.ID, rec.RawMaterialID}
	r.s.records[k] = *rec
	return nil
}

func (r *memStockRepo) Report(_ context.Context, loc entity.Location, _ string) ([]repository.StockReportItem, error) {
	var items []repository.StockReportItem
	for k, rec := range r.s.records {
		if k.locType != loc.Type || k.locID != loc.ID || rec.Metric == "" {
			continue
		}
		m := r.s.materials[k.material]
		items = append(items, repository.StockReportItem{
			RawMaterialID:      k.material,
			RawMaterialName:    m.Name,
			Category:           m.Category,
			Metric:             rec.Metric,
			Opening:            rec.Opening,
			Incoming:           rec.Incoming,
			Outgoing:           rec.Outgoing,
			CurrentlyAvailable: rec.CurrentlyAvailable,
			MinimumRequired:    rec.MinimumQuantity,
			QuantityNeeded:     rec.QuantityNeeded,
		})
	}
	return items, nil
}

func (r *memStockRepo) ReportByType(_ context.Context, locType entity.LocationType) ([]repository.StockReportItem, error) {
	var items []repository.StockReportItem
	for k, rec := range r.s.records {
		if k.locType != locType || rec.Metric == "" {
			continue
		}
		items = append(items, repository.StockReportItem{
			RawMaterialID:      k.material,
			CurrentlyAvailable: rec.CurrentlyAvailable,
			QuantityNeeded:     rec.QuantityNeeded,
		})
	}
	return items, nil
}

type lockedStockRepo struct{ db *memDB }

func (r *lockedStockRepo) Get(ctx context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memStockRepo{s: r.db.state}).Get(ctx, loc, materialID)
}

func (r *lockedStockRepo) GetForUpdate(ctx context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	return r.Get(ctx, loc, materialID)
}

func (r *lockedStockRepo) Upsert(ctx context.Context, rec *entity.StockRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memStockRepo{s: r.db.state}).Upsert(ctx, rec)
}

func (r *lockedStockRepo) Report(ctx context.Context, loc entity.Location, category string) ([]repository.StockReportItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memStockRepo{s: r.db.state}).Report(ctx, loc, category)
}

func (r *lockedStockRepo) ReportByType(ctx context.Context, locType entity.LocationType) ([]repository.StockReportItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memStockRepo{s: r.db.state}).ReportByType(ctx, locType)
}

// ── TransferRepository ───────────────────────────────────────────────────────

type memTransferRepo struct{ s *memState }

func (r *memTransferRepo) Create(_ context.Context, e *entity.TransferEntry) error {
	r.s.transfers = append(r.s.transfers, *e)
	return nil
}

func (r *memTransferRepo) ListByGroup(_ context.Context, groupID string) ([]*entity.TransferEntry, error) {
	var out []*entity.TransferEntry
	for i := range r.s.transfers {
		if r.s.transfers[i].TransferGroupID == groupID {
			cp := r.s.transfers[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTransferRepo) ListByDate(_ context.Context, _ time.Time) ([]repository.TransferReportRow, error) {
	return nil, nil
}

func (r *memTransferRepo) Report(_ context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	var out []repository.TransferReportRow
	for _, e := range r.s.transfers {
		if e.SourceStoreroomID != f.SourceStoreroomID || e.Destination != f.Destination {
			continue
		}
		if f.GroupID != "" && e.TransferGroupID != f.GroupID {
			continue
		}
		out = append(out, repository.TransferReportRow{
			Quantity:        e.Quantity,
			Metric:          e.Metric,
			DestinationType: e.Destination.Type,
			TransferredAt:   e.TransferredAt,
			TransferGroupID: e.TransferGroupID,
		})
	}
	return out, nil
}

func (r *memTransferRepo) ReportTotals(ctx context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	rows, _ := r.Report(ctx, f)
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Quantity)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return []repository.TransferReportRow{{Quantity: total, Metric: rows[0].Metric}}, nil
}

// lockedTransferRepo lectura fuera de transacción sobre el estado vivo.
type lockedTransferRepo struct{ db *memDB }

func (r *lockedTransferRepo) Create(ctx context.Context, e *entity.TransferEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memTransferRepo{s: r.db.state}).Create(ctx, e)
}

func (r *lockedTransferRepo) ListByGroup(ctx context.Context, groupID string) ([]*entity.TransferEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memTransferRepo{s: r.db.state}).ListByGroup(ctx, groupID)
}

func (r *lockedTransferRepo) ListByDate(ctx context.Context, date time.Time) ([]repository.TransferReportRow, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memTransferRepo{s: r.db.state}).ListByDate(ctx, date)
}

func (r *lockedTransferRepo) Report(ctx context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memTransferRepo{s: r.db.state}).Report(ctx, f)
}

func (r *lockedTransferRepo) ReportTotals(ctx context.Context, f repository.TransferFilter) ([]repository.TransferReportRow, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memTransferRepo{s: r.db.state}).ReportTotals(ctx, f)
}

// ── ConsumptionRepository ────────────────────────────────────────────────────

type memConsumptionRepo struct{ s *memState }

func (r *memConsumptionRepo) UpsertAdd(_ context.Context, e *entity.ConsumptionEntry) error {
	k := consumptionKey{e.RawMaterialID, dateKey(e.Date), e.Location.Type, e.Location.ID}
	if existing, ok := r.s.consumption[k]; ok {
		existing.Quantity = existing.Quantity.Add(e.Quantity)
		r.s.consumption[k] = existing
		return nil
	}
	r.s.consumption[k] = *e
	return nil
}

func (r *memConsumptionRepo) Get(_ context.Context, materialID int64, date time.Time, loc entity.Location) (*entity.ConsumptionEntry, error) {
	k := consumptionKey{materialID, dateKey(date), loc.Type, loc.ID}
	if e, ok := r.s.consumption[k]; ok {
		cp := e
		return &cp, nil
	}
	return nil, nil
}

func (r *memConsumptionRepo) DailyReport(_ context.Context, _ entity.Location, _ time.Time) ([]repository.ConsumptionReportItem, error) {
	return nil, nil
}

// lockedConsumptionRepo lectura fuera de transacción sobre el estado vivo.
type lockedConsumptionRepo struct{ db *memDB }

func (r *lockedConsumptionRepo) UpsertAdd(ctx context.Context, e *entity.ConsumptionEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memConsumptionRepo{s: r.db.state}).UpsertAdd(ctx, e)
}

func (r *lockedConsumptionRepo) Get(ctx context.Context, materialID int64, date time.Time, loc entity.Location) (*entity.ConsumptionEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memConsumptionRepo{s: r.db.state}).Get(ctx, materialID, date, loc)
}

func (r *lockedConsumptionRepo) DailyReport(ctx context.Context, loc entity.Location, date time.Time) ([]repository.ConsumptionReportItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&memConsumptionRepo{s: r.db.state}).DailyReport(ctx, loc, date)
}

// ── PurchaseRepository ───────────────────────────────────────────────────────

type memPurchaseRepo struct{ s *memState }

func (r *memPurchaseRepo) Create(_ context.Context, e *entity.PurchaseEntry) error {
	e.ID = int64(len(r.s.purchases) + 1)
	r.s.purchases = append(r.s.purchases, *e)
	return nil
}

func (r *memPurchaseRepo) ListAll(_ context.Context) ([]repository.PurchaseReportRow, error) {
	return nil, nil
}

func (r *memPurchaseRepo) ListByDate(_ context.Context, _ time.Time) ([]repository.PurchaseReportRow, decimal.Decimal, error) {
	return nil, decimal.Zero, nil
}

func (r *memPurchaseRepo) ListByVendorAndRange(_ context.Context, _ *int64, _, _ time.Time) ([]repository.InvoiceSummaryRow, error) {
	return nil, nil
}

func (r *memPurchaseRepo) VendorTotals(_ context.Context, _ *int64, _, _ time.Time) ([]repository.VendorTotalRow, error) {
	return nil, nil
}

func (r *memPurchaseRepo) Years(_ context.Context) ([]int, error) { return nil, nil }

// ── ThresholdRepository ──────────────────────────────────────────────────────

type memThresholdRepo struct{ s *memState }

func (r *memThresholdRepo) Upsert(_ context.Context, t *entity.MinimumStockThreshold) error {
	k := stockKey{t.Location.Type, t.Location.ID, t.RawMaterialID}
	r.s.thresholds[k] = *t
	return nil
}

func (r *memThresholdRepo) Get(_ context.Context, loc entity.Location, materialID int64) (*entity.MinimumStockThreshold, error) {
	k := stockKey{loc.Type, loc.ID, materialID}
	if t, ok := r.s.thresholds[k]; ok {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (r *memThresholdRepo) ListForLocation(_ context.Context, loc entity.Location) ([]repository.MaterialThresholdRow, error) {
	var out []repository.MaterialThresholdRow
	for id, m := range r.s.materials {
		if m.IsDeleted {
			continue
		}
		row := repository.MaterialThresholdRow{RawMaterialID: id, Name: m.Name, Category: m.Category, Metric: m.Metric}
		if t, ok := r.s.thresholds[stockKey{loc.Type, loc.ID, id}]; ok {
			row.MinQuantity = t.MinQuantity
		}
		out = append(out, row)
	}
	return out, nil
}

// ── PreparedDishRepository ───────────────────────────────────────────────────

type memPreparedRepo struct{ s *memState }

func (r *memPreparedRepo) Create(_ context.Context, d *entity.KitchenPreparedDish) error {
	k := preparedKey{d.DishID, d.KitchenID, dateKey(d.PreparedOn)}
	d.ID = int64(len(r.s.prepared) + 1)
	r.s.prepared[k] = *d
	return nil
}

func (r *memPreparedRepo) Get(_ context.Context, dishID, kitchenID int64, on time.Time) (*entity.KitchenPreparedDish, error) {
	if d, ok := r.s.prepared[preparedKey{dishID, kitchenID, dateKey(on)}]; ok {
		cp := d
		return &cp, nil
	}
	return nil, nil
}

func (r *memPreparedRepo) GetForUpdate(ctx context.Context, dishID, kitchenID int64, on time.Time) (*entity.KitchenPreparedDish, error) {
	return r.Get(ctx, dishID, kitchenID, on)
}

func (r *memPreparedRepo) UpdateAvailable(_ context.Context, d *entity.KitchenPreparedDish) error {
	k := preparedKey{d.DishID, d.KitchenID, dateKey(d.PreparedOn)}
	r.s.prepared[k] = *d
	return nil
}

func (r *memPreparedRepo) ListByDate(_ context.Context, _ time.Time) ([]*entity.KitchenPreparedDish, error) {
	return nil, nil
}

func (r *memPreparedRepo) CreateTransfer(_ context.Context, t *entity.PreparedDishTransfer) error {
	t.ID = int64(len(r.s.prepTx) + 1)
	r.s.prepTx = append(r.s.prepTx, *t)
	return nil
}

func (r *memPreparedRepo) ListTransfersByDate(_ context.Context, _ time.Time) ([]*entity.PreparedDishTransfer, error) {
	return nil, nil
}

// ── Datos de referencia ──────────────────────────────────────────────────────

type memMaterialRepo struct{ db *memDB }

func (r *memMaterialRepo) GetByID(_ context.Context, id int64) (*entity.RawMaterial, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if m, ok := r.db.state.materials[id]; ok {
		cp := m
		return &cp, nil
	}
	return nil, nil
}

func (r *memMaterialRepo) GetByName(_ context.Context, name string) (*entity.RawMaterial, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, m := range r.db.state.materials {
		if m.Name == name {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMaterialRepo) List(_ context.Context, _ bool) ([]*entity.RawMaterial, error) {
	return nil, nil
}

func (r *memMaterialRepo) Categories(_ context.Context) ([]string, error) { return nil, nil }

func (r *memMaterialRepo) Create(_ context.Context, m *entity.RawMaterial) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.state.materials[m.ID] = *m
	return nil
}

func (r *memMaterialRepo) SoftDelete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m := r.db.state.materials[id]
	m.IsDeleted = true
	r.db.state.materials[id] = m
	return nil
}

type memDishRepo struct{ db *memDB }

func (r *memDishRepo) GetByID(_ context.Context, id int64) (*entity.Dish, error) {
	if d, ok := r.db.state.dishes[id]; ok {
		cp := d
		return &cp, nil
	}
	return nil, nil
}

func (r *memDishRepo) GetByCategoryAndName(_ context.Context, _, _ string) (*entity.Dish, error) {
	return nil, nil
}
func (r *memDishRepo) List(_ context.Context) ([]*entity.Dish, error) { return nil, nil }
func (r *memDishRepo) Categories(_ context.Context) ([]string, error) { return nil, nil }

type memRecipeRepo struct{ db *memDB }

func (r *memRecipeRepo) ListByDish(_ context.Context, dishID int64) ([]entity.DishRecipeRow, error) {
	return append([]entity.DishRecipeRow(nil), r.db.state.recipes[dishID]...), nil
}

type memVendorRepo struct{ db *memDB }

func (r *memVendorRepo) GetByID(_ context.Context, id int64) (*entity.Vendor, error) {
	if v, ok := r.db.state.vendors[id]; ok {
		cp := v
		return &cp, nil
	}
	return nil, nil
}

func (r *memVendorRepo) List(_ context.Context, _ bool) ([]*entity.Vendor, error) { return nil, nil }

// ── Reloj fijo ───────────────────────────────────────────────────────────────

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
func (c fixedClock) Today() time.Time {
	return time.Date(c.t.Year(), c.t.Month(), c.t.Day(), 0, 0, 0, 0, time.UTC)
}

// ── Candados por fila ────────────────────────────────────────────────────────
//
// rowLockDB emula el bloqueo por fila de la BD: las transacciones se
// intercalan libremente y GetForUpdate retiene un candado por clave hasta el
// fin de la transacción. Una clave inexistente también toma su candado antes
// de devolver el registro en cero, como exige el contrato del puerto. Sirve
// para carreras que el mutex global de memDB no puede exhibir, por ejemplo
// la materialización concurrente de una clave nueva.

type rowLockDB struct {
	mu      sync.Mutex
	records map[stockKey]entity.StockRecord
	locks   map[stockKey]*sync.Mutex

	materials map[int64]entity.RawMaterial
}

func newRowLockDB() *rowLockDB {
	return &rowLockDB{
		records:   map[stockKey]entity.StockRecord{},
		locks:     map[stockKey]*sync.Mutex{},
		materials: map[int64]entity.RawMaterial{},
	}
}

func (db *rowLockDB) Run(_ context.Context, fn func(r ledger.TxRepos) error) error {
	tx := &rowLockTx{db: db, writes: map[stockKey]entity.StockRecord{}}
	defer tx.release()
	repos := ledger.TxRepos{
		Stock:      &rowLockStockRepo{tx: tx},
		Thresholds: emptyThresholdRepo{},
	}
	if err := fn(repos); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (db *rowLockDB) stockRepo() repository.StockRecordRepository {
	return &rowLockStockRepo{tx: &rowLockTx{db: db}}
}

func (db *rowLockDB) materialRepo() repository.RawMaterialRepository {
	return staticMaterialRepo{m: db.materials}
}

func (db *rowLockDB) record(loc entity.Location, materialID int64) entity.StockRecord {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.records[stockKey{loc.Type, loc.ID, materialID}]
}

type rowLockTx struct {
	db     *rowLockDB
	held   []*sync.Mutex
	writes map[stockKey]entity.StockRecord
}

func (tx *rowLockTx) lock(k stockKey) {
	tx.db.mu.Lock()
	m, ok := tx.db.locks[k]
	if !ok {
		m = &sync.Mutex{}
		tx.db.locks[k] = m
	}
	tx.db.mu.Unlock()
	m.Lock()
	tx.held = append(tx.held, m)
}

// commit aplica las escrituras aún con los candados de fila tomados.
func (tx *rowLockTx) commit() {
	tx.db.mu.Lock()
	for k, rec := range tx.writes {
		tx.db.records[k] = rec
	}
	tx.db.mu.Unlock()
}

func (tx *rowLockTx) release() {
	for _, m := range tx.held {
		m.Unlock()
	}
	tx.held = nil
}

type rowLockStockRepo struct{ tx *rowLockTx }

func (r *rowLockStockRepo) Get(_ context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	k := stockKey{loc.Type, loc.ID, materialID}
	r.tx.db.mu.Lock()
	rec, ok := r.tx.db.records[k]
	r.tx.db.mu.Unlock()
	if ok {
		cp := rec
		return &cp, nil
	}
	return entity.NewStockRecord(loc, materialID, ""), nil
}

func (r *rowLockStockRepo) GetForUpdate(_ context.Context, loc entity.Location, materialID int64) (*entity.StockRecord, error) {
	k := stockKey{loc.Type, loc.ID, materialID}
	r.tx.lock(k)
	if rec, ok := r.tx.writes[k]; ok {
		cp := rec
		return &cp, nil
	}
	// Bajo el candado se relee el último estado confirmado de la fila.
	r.tx.db.mu.Lock()
	rec, ok := r.tx.db.records[k]
	r.tx.db.mu.Unlock()
	if ok {
		cp := rec
		return &cp, nil
	}
	return entity.NewStockRecord(loc, materialID, ""), nil
}

func (r *rowLockStockRepo) Upsert(_ context.Context, rec *entity.StockRecord) error {
	r.tx.writes[stockKey{rec.Location.Type, rec.Location.ID, rec.RawMaterialID}] = *rec
	return nil
}

func (r *rowLockStockRepo) Report(_ context.Context, _ entity.Location, _ string) ([]repository.StockReportItem, error) {
	return nil, nil
}

func (r *rowLockStockRepo) ReportByType(_ context.Context, _ entity.LocationType) ([]repository.StockReportItem, error) {
	return nil, nil
}

type emptyThresholdRepo struct{}

func (emptyThresholdRepo) Upsert(_ context.Context, _ *entity.MinimumStockThreshold) error {
	return nil
}

func (emptyThresholdRepo) Get(_ context.Context, _ entity.Location, _ int64) (*entity.MinimumStockThreshold, error) {
	return nil, nil
}

func (emptyThresholdRepo) ListForLocation(_ context.Context, _ entity.Location) ([]repository.MaterialThresholdRow, error) {
	return nil, nil
}

type staticMaterialRepo struct{ m map[int64]entity.RawMaterial }

func (r staticMaterialRepo) GetByID(_ context.Context, id int64) (*entity.RawMaterial, error) {
	if m, ok := r.m[id]; ok {
		cp := m
		return &cp, nil
	}
	return nil, nil
}

func (r staticMaterialRepo) GetByName(_ context.Context, _ string) (*entity.RawMaterial, error) {
	return nil, nil
}

func (r staticMaterialRepo) List(_ context.Context, _ bool) ([]*entity.RawMaterial, error) {
	return nil, nil
}

func (r staticMaterialRepo) Categories(_ context.Context) ([]string, error) { return nil, nil }

func (r staticMaterialRepo) Create(_ context.Context, _ *entity.RawMaterial) error { return nil }

func (r staticMaterialRepo) SoftDelete(_ context.Context, _ int64) error { return nil }
