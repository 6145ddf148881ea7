package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/BhanuPrakash2047/live-easy/internal/model"
    "github.com/BhanuPrakash2047/live-easy/internal/utils"
)

// UserRepo provides CRUD operations on the `users` table for the auth
// service.  Passwords are hashed with bcrypt before insertion; the
// plain password never reaches the database layer unhashed.
type UserRepo struct {
    db *sql.DB
}

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user with a freshly generated UUID and a
// bcrypt-hashed password.  It returns ErrEmailExists when the email
// is already taken (unique index on users.email).
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (string, error) {
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return "", err
    }
    id := uuid.NewString()
    const q = `INSERT INTO users (id, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`
    _, err = r.db.ExecContext(ctx, q, id, email, hash, role, time.Now().UTC())
    if err != nil {
        // Duplicate key on the unique email index
        if strings.Contains(err.Error(), "Duplicate entry") {
            return "", ErrEmailExists
        }
        return "", err
    }
    return id, nil
}

// GetByEmail returns the user with the given email or ErrNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    const q = `SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?`
    var u model.User
    err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
    const q = `SELECT id, email, password_hash, role, created_at FROM users WHERE id = ?`
    var u model.User
    err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}
