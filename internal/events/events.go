// Package events publishes reservation domain events to RabbitMQ.
// Publishing is best effort: callers log failures and carry on.
package events

import (
	"context"
	"time"
)

// Queue names, one durable queue per event type
const (
	ReservationCreated   = "reservation.created"
	ReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is the JSON body of both reservation queues
type ReservationEvent struct {
	ReservationID   uint      `json:"reservation_id"`
	RestaurantID    uint      `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name"`
	UserID          uint      `json:"user_id"`
	ReservationDate string    `json:"reservation_date"`
	ReservationTime string    `json:"reservation_time"`
	NumberOfPeople  int       `json:"number_of_people"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Publisher sends an event to the named queue
type Publisher interface {
	Publish(ctx context.Context, queue string, event interface{}) error
	Close() error
}

// NoopPublisher drops every event; used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }
