// Package queue defines the message payloads exchanged over the
// broker and the RabbitMQ publisher/consumer used to move them.
package queue

import "time"

// Topics published by the services.  Queue names double as routing
// keys on the default exchange.
const (
    // TopicLoadStatus carries LoadStatusChangedEvent messages emitted
    // by the load service whenever a load's status changes.
    TopicLoadStatus = "load-status-changes"
    // TopicBookingEvents carries the same event shape emitted by the
    // booking workflow after its synchronous load-status updates.
    TopicBookingEvents = "booking-events"
)

// LoadStatusChangedEvent is broadcast after a load's status has been
// successfully updated.  It is a best-effort notification, not a
// durable commit log: consumers must tolerate loss, and loss of an
// event never rolls back the load mutation that already succeeded.
type LoadStatusChangedEvent struct {
    LoadID    string    `json:"loadId"`
    Status    string    `json:"status"`
    Timestamp time.Time `json:"timestamp"`
}

// NewLoadStatusChangedEvent stamps the event with the current UTC time.
func NewLoadStatusChangedEvent(loadID, status string) LoadStatusChangedEvent {
    return LoadStatusChangedEvent{LoadID: loadID, Status: status, Timestamp: time.Now().UTC()}
}
