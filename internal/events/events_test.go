package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), ReservationCreated, ReservationEvent{ReservationID: 1}))
	assert.NoError(t, p.Close())
}

func TestReservationEventJSON(t *testing.T) {
	ev := ReservationEvent{
		ReservationID:   7,
		RestaurantID:    3,
		RestaurantName:  "名古屋めし処",
		UserID:          5,
		ReservationDate: "2026-11-01",
		ReservationTime: "18:30",
		NumberOfPeople:  4,
		OccurredAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, "18:30", fields["reservation_time"])
	assert.Equal(t, float64(4), fields["number_of_people"])
	assert.Equal(t, "2026-10-01T09:00:00Z", fields["occurred_at"])
}

func TestAMQPPublisher(t *testing.T) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		t.Skip("AMQP_URL not set, skipping broker test")
	}
	p, err := NewAMQPPublisher(url)
	require.NoError(t, err)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, p.Publish(ctx, ReservationCancelled, ReservationEvent{ReservationID: 1, OccurredAt: time.Now()}))
}
