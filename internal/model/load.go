package model

import "time"

// LoadStatus enumerates the lifecycle states of a Load.  A load is
// POSTED when the shipper creates it, becomes BOOKED when a booking
// is created or accepted against it, and CANCELLED when the booking
// is withdrawn.  Status transitions are driven only by the booking
// workflow's synchronous status-update path or by explicit
// shipper/admin edits, never written directly by booking-local state.
type LoadStatus string

const (
    LoadPosted    LoadStatus = "POSTED"
    LoadBooked    LoadStatus = "BOOKED"
    LoadCancelled LoadStatus = "CANCELLED"
)

// Valid reports whether s is one of the known load statuses.
func (s LoadStatus) Valid() bool {
    switch s {
    case LoadPosted, LoadBooked, LoadCancelled:
        return true
    }
    return false
}

// Facility groups the loading and unloading details of a load.  It is
// embedded in the Load row rather than stored as a separate entity.
//
// Fields:
//  LoadingPoint   – city or terminal where the truck is loaded.
//  UnloadingPoint – destination city or terminal.
//  LoadingDate    – scheduled loading timestamp (UTC).
//  UnloadingDate  – scheduled unloading timestamp (UTC).
type Facility struct {
    LoadingPoint   string    `json:"loadingPoint"`   // loads.loading_point
    UnloadingPoint string    `json:"unloadingPoint"` // loads.unloading_point
    LoadingDate    time.Time `json:"loadingDate"`    // loads.loading_date
    UnloadingDate  time.Time `json:"unloadingDate"`  // loads.unloading_date
}

// Load represents a freight posting as stored in the `loads` table.
// A load is owned by the shipper identified by ShipperID; that field
// is set from the authenticated identity at creation time and never
// changed afterwards.  Bookings reference a load only by id (weak
// reference) – a load carries no knowledge of its bookings.
//
// Fields:
//  ID          – UUID primary key, generated at creation.
//  ShipperID   – identifier of the shipper who posted the load.
//  Facility    – loading/unloading details.
//  ProductType – kind of goods being shipped.
//  TruckType   – required truck category.
//  NoOfTrucks  – number of trucks requested.
//  Weight      – total cargo weight.
//  Comment     – free-form note from the shipper.
//  DatePosted  – creation timestamp (UTC).
//  Status      – POSTED, BOOKED or CANCELLED.
type Load struct {
    ID          string     `json:"id"`          // loads.id
    ShipperID   string     `json:"shipperId"`   // loads.shipper_id
    Facility    Facility   `json:"facility"`    // embedded facility columns
    ProductType string     `json:"productType"` // loads.product_type
    TruckType   string     `json:"truckType"`   // loads.truck_type
    NoOfTrucks  int        `json:"noOfTrucks"`  // loads.no_of_trucks
    Weight      float64    `json:"weight"`      // loads.weight
    Comment     string     `json:"comment"`     // loads.comment
    DatePosted  time.Time  `json:"datePosted"`  // loads.date_posted
    Status      LoadStatus `json:"status"`      // loads.status
}
