package model

import "time"

// Roles recognized by the platform.  SHIPPER posts loads, TRANSPORTER
// bids on them, ADMIN may act on any resource.
const (
    RoleShipper     = "SHIPPER"
    RoleTransporter = "TRANSPORTER"
    RoleAdmin       = "ADMIN"
)

// ValidRole reports whether r is one of the recognized role names.
func ValidRole(r string) bool {
    switch r {
    case RoleShipper, RoleTransporter, RoleAdmin:
        return true
    }
    return false
}

// User represents an account record as stored in the `users` table.
// Only the bcrypt hash of the password is persisted, never the plain
// password.  The hash is hidden from JSON responses.
//
// Fields:
//  ID           – UUID primary key.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – SHIPPER, TRANSPORTER or ADMIN.
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           string    `json:"id"`        // users.id
    Email        string    `json:"email"`     // users.email
    PasswordHash string    `json:"-"`         // users.password_hash
    Role         string    `json:"role"`      // users.role
    CreatedAt    time.Time `json:"createdAt"` // users.created_at
}
