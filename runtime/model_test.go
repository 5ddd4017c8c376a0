package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trade-lab/content"
	"trade-lab/domain"
	"trade-lab/errors"
)

func TestModel_Deliver_Unknown_Receiver_Fails(t *testing.T) {
	req := require.New(t)
	m := NewModel(testLogger(), start)
	buyer := m.NewActor("buyer", domain.Location{})

	// Given a demand addressed to an actor the model never registered
	demand := content.NewDemand(m.IDs(), m.Now(), buyer.ID, domain.NewActorID(),
		domain.Product{ID: "cement"}, 10, start.Add(24*time.Hour))

	err := m.Deliver(demand, 0)

	req.ErrorIs(err, errors.ErrUnknownActor)
}

func TestModel_Send_Reaches_The_Receiver_Via_The_Queue(t *testing.T) {
	req := require.New(t)
	m := NewModel(testLogger(), start)
	buyer := m.NewActor("buyer", domain.Location{})
	seller := m.NewActor("seller", domain.Location{})

	demand := content.NewDemand(m.IDs(), m.Now(), buyer.ID, seller.ID,
		domain.Product{ID: "cement"}, 10, start.Add(24*time.Hour))

	// When the buyer sends with a delay
	req.NoError(buyer.Send(demand, 2*time.Hour))
	req.NoError(m.Run(context.Background(), time.Time{}))

	// Then the receiver recorded the demand as received
	req.True(seller.Store().ContainsKind(demand.GroupingID(), content.KindDemand))
	req.Equal(start.Add(2*time.Hour), m.Now())
}

func TestModel_Every_Rearms_Until_The_Horizon(t *testing.T) {
	req := require.New(t)
	m := NewModel(testLogger(), start)
	ticks := 0

	req.NoError(m.Every(time.Hour, func() { ticks++ }))
	req.NoError(m.Run(context.Background(), start.Add(4*time.Hour)))

	req.Equal(4, ticks)
}

func TestModel_Every_Rejects_Non_Positive_Interval(t *testing.T) {
	req := require.New(t)
	m := NewModel(testLogger(), start)

	req.ErrorIs(m.Every(0, func() {}), errors.ErrNegativeDelay)
}

func TestModel_Run_Recovers_A_Panicking_Handler(t *testing.T) {
	req := require.New(t)
	m := NewModel(testLogger(), start)

	m.Scheduler().At(start.Add(time.Hour), func() { panic("broken handler") })

	err := m.Run(context.Background(), time.Time{})

	req.Error(err)
	req.Contains(err.Error(), "broken handler")
}
