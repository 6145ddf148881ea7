package repository

import (
    "context"
    "database/sql"

    "github.com/BhanuPrakash2047/live-easy/internal/model"
)

// LoadRepo provides CRUD operations on the `loads` table.  The
// facility details are stored as flattened columns on the same row.
// All timestamp fields are assumed to be stored in UTC.
type LoadRepo struct {
    db *sql.DB
}

// NewLoadRepo returns a new LoadRepo bound to the given database.
func NewLoadRepo(db *sql.DB) *LoadRepo { return &LoadRepo{db: db} }

const loadColumns = `id, shipper_id, loading_point, unloading_point, loading_date, unloading_date,
    product_type, truck_type, no_of_trucks, weight, comment, date_posted, status`

// scanLoad reads one row in loadColumns order into a model.Load.
func scanLoad(row interface{ Scan(...any) error }) (*model.Load, error) {
    var l model.Load
    err := row.Scan(
        &l.ID, &l.ShipperID,
        &l.Facility.LoadingPoint, &l.Facility.UnloadingPoint,
        &l.Facility.LoadingDate, &l.Facility.UnloadingDate,
        &l.ProductType, &l.TruckType, &l.NoOfTrucks, &l.Weight,
        &l.Comment, &l.DatePosted, &l.Status,
    )
    if err != nil {
        return nil, err
    }
    return &l, nil
}

// Save inserts the load.  The caller supplies a populated model with
// id, shipper and status already set.
func (r *LoadRepo) Save(ctx context.Context, l *model.Load) error {
    const q = `INSERT INTO loads (` + loadColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q,
        l.ID, l.ShipperID,
        l.Facility.LoadingPoint, l.Facility.UnloadingPoint,
        l.Facility.LoadingDate, l.Facility.UnloadingDate,
        l.ProductType, l.TruckType, l.NoOfTrucks, l.Weight,
        l.Comment, l.DatePosted, l.Status,
    )
    return err
}

// Get returns the load with the given id or ErrNotFound.
func (r *LoadRepo) Get(ctx context.Context, id string) (*model.Load, error) {
    const q = `SELECT ` + loadColumns + ` FROM loads WHERE id = ?`
    l, err := scanLoad(r.db.QueryRowContext(ctx, q, id))
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return l, nil
}

// Update persists the mutable fields of an existing load.  The status
// column is included so the same statement serves both field edits
// and status transitions.
func (r *LoadRepo) Update(ctx context.Context, l *model.Load) error {
    const q = `UPDATE loads SET loading_point = ?, unloading_point = ?, loading_date = ?, unloading_date = ?,
        product_type = ?, truck_type = ?, no_of_trucks = ?, weight = ?, comment = ?, status = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q,
        l.Facility.LoadingPoint, l.Facility.UnloadingPoint,
        l.Facility.LoadingDate, l.Facility.UnloadingDate,
        l.ProductType, l.TruckType, l.NoOfTrucks, l.Weight,
        l.Comment, l.Status, l.ID,
    )
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        // RowsAffected is 0 both for a missing row and for a no-op
        // update; distinguish by re-reading the row.
        if _, err := r.Get(ctx, l.ID); err != nil {
            return err
        }
    }
    return nil
}

// Delete removes the load row.  Missing rows yield ErrNotFound.
func (r *LoadRepo) Delete(ctx context.Context, id string) error {
    const q = `DELETE FROM loads WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// FindAll returns every load ordered by posting time, newest first.
func (r *LoadRepo) FindAll(ctx context.Context) ([]model.Load, error) {
    const q = `SELECT ` + loadColumns + ` FROM loads ORDER BY date_posted DESC`
    return r.queryLoads(ctx, q)
}

// FindByShipper returns the loads posted by the given shipper.
func (r *LoadRepo) FindByShipper(ctx context.Context, shipperID string) ([]model.Load, error) {
    const q = `SELECT ` + loadColumns + ` FROM loads WHERE shipper_id = ? ORDER BY date_posted DESC`
    return r.queryLoads(ctx, q, shipperID)
}

// FindByTruckType returns the loads requesting the given truck type.
func (r *LoadRepo) FindByTruckType(ctx context.Context, truckType string) ([]model.Load, error) {
    const q = `SELECT ` + loadColumns + ` FROM loads WHERE truck_type = ? ORDER BY date_posted DESC`
    return r.queryLoads(ctx, q, truckType)
}

func (r *LoadRepo) queryLoads(ctx context.Context, q string, args ...any) ([]model.Load, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.Load, 0)
    for rows.Next() {
        l, err := scanLoad(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *l)
    }
    return out, rows.Err()
}
