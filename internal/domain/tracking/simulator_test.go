package tracking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed sequence of draws, cycling when exhausted.
type fixedSource struct {
	values []float64
	calls  int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.calls%len(f.values)]
	f.calls++
	return v
}

func mustLive(t *testing.T, id string, status Status, progress int, alert string) LiveOrder {
	t.Helper()
	o, err := NewLiveOrder(id, status, progress, alert)
	require.NoError(t, err)
	return o
}

func TestAdvance_NewOrderBelowThreshold(t *testing.T) {
	orders := []LiveOrder{mustLive(t, "SHPF-5817", StatusNewOrder, 10, "")}

	next, changes := Advance(orders, &fixedSource{values: []float64{0.10}})

	assert.Equal(t, StatusProcessing, next[0].Status)
	assert.Equal(t, 25, next[0].Progress)
	assert.Equal(t, []Transition{{OrderID: "SHPF-5817", From: StatusNewOrder, To: StatusProcessing}}, changes)
	assert.Equal(t, StatusNewOrder, orders[0].Status, "input must not be mutated")
}

func TestAdvance_ForwardChain(t *testing.T) {
	tests := []struct {
		from     Status
		to       Status
		progress int
	}{
		{StatusNewOrder, StatusProcessing, 25},
		{StatusProcessing, StatusShipped, 75},
		{StatusShipped, StatusDelivered, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			next, _ := Advance([]LiveOrder{mustLive(t, "A", tt.from, 0, "")}, &fixedSource{values: []float64{0}})
			assert.Equal(t, tt.to, next[0].Status)
			assert.Equal(t, tt.progress, next[0].Progress)
		})
	}
}

func TestAdvance_AtOrAboveThresholdIsUnchanged(t *testing.T) {
	orders := []LiveOrder{mustLive(t, "A", StatusProcessing, 50, "")}

	next, changes := Advance(orders, &fixedSource{values: []float64{AdvanceThreshold}})

	assert.Equal(t, orders, next)
	assert.Empty(t, changes)
}

func TestAdvance_DeliveredClearsAlert(t *testing.T) {
	orders := []LiveOrder{mustLive(t, "A", StatusShipped, 75, "late courier")}

	next, _ := Advance(orders, &fixedSource{values: []float64{0.05}})

	assert.Equal(t, StatusDelivered, next[0].Status)
	assert.Nil(t, next[0].Alert)
	require.NotNil(t, orders[0].Alert)
	assert.Equal(t, "late courier", *orders[0].Alert)
}

func TestAdvance_DelayedIsNeverAdvanced(t *testing.T) {
	orders := []LiveOrder{mustLive(t, "A", StatusDelayed, 25, "تأخير في التجهيز")}
	src := &fixedSource{values: []float64{0}}

	for i := 0; i < 20; i++ {
		orders, _ = Advance(orders, src)
	}

	assert.Equal(t, StatusDelayed, orders[0].Status)
	assert.Equal(t, 25, orders[0].Progress)
	assert.True(t, orders[0].HasAlert())
}

func TestAdvance_DeliveredIsStableAndDrawsNothing(t *testing.T) {
	orders := []LiveOrder{mustLive(t, "A", StatusDelivered, 100, "")}
	src := &fixedSource{values: []float64{0}}

	for i := 0; i < 10; i++ {
		var changes []Transition
		orders, changes = Advance(orders, src)
		assert.Empty(t, changes)
	}

	assert.Equal(t, mustLive(t, "A", StatusDelivered, 100, ""), orders[0])
	assert.Zero(t, src.calls)
}

func TestAdvance_DrawOrderIsDeterministic(t *testing.T) {
	orders := []LiveOrder{
		mustLive(t, "A", StatusNewOrder, 10, ""),
		mustLive(t, "B", StatusDelivered, 100, ""),
		mustLive(t, "C", StatusProcessing, 50, ""),
	}

	// B is skipped, so the second draw belongs to C.
	next, _ := Advance(orders, &fixedSource{values: []float64{0.9, 0.1}})

	assert.Equal(t, StatusNewOrder, next[0].Status)
	assert.Equal(t, StatusShipped, next[2].Status)
}

func TestAdvance_ProgressIsMonotonic(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	orders := []LiveOrder{
		mustLive(t, "A", StatusNewOrder, 10, ""),
		mustLive(t, "B", StatusProcessing, 50, ""),
		mustLive(t, "C", StatusShipped, 75, ""),
		mustLive(t, "D", StatusDelayed, 25, "x"),
	}

	for tick := 0; tick < 200; tick++ {
		next, changes := Advance(orders, rnd)
		for i := range orders {
			assert.GreaterOrEqual(t, next[i].Progress, orders[i].Progress)
		}
		for _, c := range changes {
			for i := range orders {
				if orders[i].ID == c.OrderID {
					assert.Greater(t, next[i].Progress, orders[i].Progress)
				}
			}
		}
		orders = next
	}

	assert.Equal(t, StatusDelivered, orders[0].Status)
	assert.Equal(t, StatusDelayed, orders[3].Status)
}

func TestAdvance_SameDrawsSameResult(t *testing.T) {
	orders := []LiveOrder{
		mustLive(t, "A", StatusNewOrder, 10, ""),
		mustLive(t, "B", StatusShipped, 75, "x"),
	}

	a, _ := Advance(orders, rand.New(rand.NewSource(7)))
	b, _ := Advance(orders, rand.New(rand.NewSource(7)))

	assert.Equal(t, a, b)
}

func TestNewLiveOrder_Validation(t *testing.T) {
	_, err := NewLiveOrder("", StatusNewOrder, 0, "")
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = NewLiveOrder("A", Status("Lost"), 0, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = NewLiveOrder("A", StatusNewOrder, 101, "")
	assert.ErrorIs(t, err, ErrInvalidProgress)
}
