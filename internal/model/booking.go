package model

import "time"

// BookingStatus enumerates the lifecycle states of a Booking.  A
// booking starts PENDING and is either ACCEPTED or REJECTED by the
// shipper.  ACCEPTED is the only transition that synchronizes the
// referenced load; REJECTED leaves the load untouched.
type BookingStatus string

const (
    BookingPending  BookingStatus = "PENDING"
    BookingAccepted BookingStatus = "ACCEPTED"
    BookingRejected BookingStatus = "REJECTED"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
    switch s {
    case BookingPending, BookingAccepted, BookingRejected:
        return true
    }
    return false
}

// Booking represents a carrier's bid against a load as stored in the
// `bookings` table.  LoadID is a weak reference into the load
// service's data store: existence is checked at creation time only,
// so a dangling reference is possible and must be handled wherever
// the load is dereferenced.
//
// Fields:
//  ID            – UUID primary key, generated at creation.
//  LoadID        – id of the referenced load (foreign key by value).
//  TransporterID – identifier of the transporter who placed the bid.
//  ProposedRate  – rate offered by the transporter.
//  Comment       – free-form note from the transporter.
//  Status        – PENDING, ACCEPTED or REJECTED.
//  RequestedAt   – creation timestamp (UTC).
type Booking struct {
    ID            string        `json:"id"`            // bookings.id
    LoadID        string        `json:"loadId"`        // bookings.load_id
    TransporterID string        `json:"transporterId"` // bookings.transporter_id
    ProposedRate  float64       `json:"proposedRate"`  // bookings.proposed_rate
    Comment       string        `json:"comment"`       // bookings.comment
    Status        BookingStatus `json:"status"`        // bookings.status
    RequestedAt   time.Time     `json:"requestedAt"`   // bookings.requested_at
}
