package repository

import (
    "context"
    "database/sql"

    "github.com/BhanuPrakash2047/live-easy/internal/model"
)

// BookingRepo provides CRUD operations on the `bookings` table.  A
// booking references its load only by id; no foreign-key constraint
// reaches across into the load service's database.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, load_id, transporter_id, proposed_rate, comment, status, requested_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
    var b model.Booking
    err := row.Scan(&b.ID, &b.LoadID, &b.TransporterID, &b.ProposedRate, &b.Comment, &b.Status, &b.RequestedAt)
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// Save inserts the booking row.
func (r *BookingRepo) Save(ctx context.Context, b *model.Booking) error {
    const q = `INSERT INTO bookings (` + bookingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q, b.ID, b.LoadID, b.TransporterID, b.ProposedRate, b.Comment, b.Status, b.RequestedAt)
    return err
}

// Get returns the booking with the given id or ErrNotFound.
func (r *BookingRepo) Get(ctx context.Context, id string) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return b, nil
}

// Update persists the mutable fields of an existing booking.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
    const q = `UPDATE bookings SET proposed_rate = ?, comment = ?, status = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, b.ProposedRate, b.Comment, b.Status, b.ID)
    return err
}

// Delete removes the booking row.  Missing rows yield ErrNotFound.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
    const q = `DELETE FROM bookings WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// FindAll returns every booking ordered by request time, newest first.
func (r *BookingRepo) FindAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY requested_at DESC`
    return r.queryBookings(ctx, q)
}

// FindByLoad returns the bookings placed against the given load.
func (r *BookingRepo) FindByLoad(ctx context.Context, loadID string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE load_id = ? ORDER BY requested_at DESC`
    return r.queryBookings(ctx, q, loadID)
}

// FindByTransporter returns the bookings placed by the given transporter.
func (r *BookingRepo) FindByTransporter(ctx context.Context, transporterID string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE transporter_id = ? ORDER BY requested_at DESC`
    return r.queryBookings(ctx, q, transporterID)
}

func (r *BookingRepo) queryBookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.Booking, 0)
    for rows.Next() {
        b, err := scanBooking(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *b)
    }
    return out, rows.Err()
}
