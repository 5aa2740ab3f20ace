package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records every CreateOrder call and can fail on demand or run
// a hook mid-call to simulate reentrant user input while the request is
// outstanding.
type fakeSubmitter struct {
	calls  []Order
	err    error
	rcpt   Receipt
	inside func()
}

func (f *fakeSubmitter) CreateOrder(_ context.Context, order Order) (Receipt, error) {
	f.calls = append(f.calls, order)
	if f.inside != nil {
		f.inside()
	}
	if f.err != nil {
		return Receipt{}, f.err
	}
	return f.rcpt, nil
}

func newTestService() (*Service, *fakeSubmitter) {
	sub := &fakeSubmitter{rcpt: Receipt{OrderID: 42, Status: "completed"}}
	svc := NewService(newTestCart(), sub)
	return svc, sub
}

// ============================================
// SubmitImmediate Tests
// ============================================

func TestSubmitImmediate_Success(t *testing.T) {
	svc, sub := newTestService()
	svc.Cart().AddLine(1) // Espresso, 150
	svc.Cart().AddLine(1)

	total, rcpt, err := svc.SubmitImmediate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 300, total)
	assert.Equal(t, 42, rcpt.OrderID)
	assert.Equal(t, StatusEmpty, svc.Cart().Status())

	require.Len(t, sub.calls, 1)
	order := sub.calls[0]
	assert.True(t, order.CompleteNow)
	assert.True(t, order.CompletionDate.IsZero())
	require.Len(t, order.Items, 1)
	assert.Equal(t, OrderItem{ProductID: 1, Quantity: 2}, order.Items[0])
	assert.NotEmpty(t, order.ClientRef)
}

func TestSubmitImmediate_EmptyCartMakesNoNetworkCall(t *testing.T) {
	svc, sub := newTestService()

	_, _, err := svc.SubmitImmediate(context.Background())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, sub.calls)
}

func TestSubmitImmediate_FailurePreservesCart(t *testing.T) {
	svc, sub := newTestService()
	sub.err = errors.New("backend down")
	svc.Cart().AddLine(1)
	svc.Cart().AddLine(2)

	_, _, err := svc.SubmitImmediate(context.Background())

	require.Error(t, err)
	assert.Equal(t, StatusPopulated, svc.Cart().Status())
	assert.Len(t, svc.Cart().Lines(), 2)

	// The user can retry and the exact same items go out again.
	_, _, err = svc.SubmitImmediate(context.Background())
	sub.err = nil
	require.Len(t, sub.calls, 2)
	assert.Equal(t, sub.calls[0].Items, sub.calls[1].Items)
	require.Error(t, err)
}

// A second submit arriving while the first request is still on the wire must
// be rejected by the engine guard, producing exactly one network call even
// when the UI disable is bypassed.
func TestSubmitImmediate_DoubleSubmitMakesOneNetworkCall(t *testing.T) {
	svc, sub := newTestService()
	svc.Cart().AddLine(1)

	var reentrantErr error
	sub.inside = func() {
		_, _, reentrantErr = svc.SubmitImmediate(context.Background())
	}

	_, _, err := svc.SubmitImmediate(context.Background())

	require.NoError(t, err)
	assert.ErrorIs(t, reentrantErr, ErrSubmitInFlight)
	assert.Len(t, sub.calls, 1)
}

// ============================================
// SubmitScheduled Tests
// ============================================

func TestSubmitScheduled_Success(t *testing.T) {
	svc, sub := newTestService()
	svc.Cart().AddLine(2)
	opened := time.Now()
	completeAt := opened.Add(2 * time.Hour)

	rcpt, err := svc.SubmitScheduled(context.Background(), completeAt, opened, "call on arrival")

	require.NoError(t, err)
	assert.Equal(t, 42, rcpt.OrderID)
	assert.Equal(t, StatusEmpty, svc.Cart().Status())

	require.Len(t, sub.calls, 1)
	order := sub.calls[0]
	assert.False(t, order.CompleteNow)
	assert.Equal(t, completeAt, order.CompletionDate)
	assert.Equal(t, "call on arrival", order.Note)
}

func TestSubmitScheduled_PastCompletionRejectedBeforeNetwork(t *testing.T) {
	svc, sub := newTestService()
	svc.Cart().AddLine(1)
	opened := time.Now()

	_, err := svc.SubmitScheduled(context.Background(), opened.Add(-time.Minute), opened, "")

	assert.ErrorIs(t, err, ErrPastCompletion)
	assert.Empty(t, sub.calls)
	assert.Equal(t, StatusPopulated, svc.Cart().Status())
}

func TestSubmitScheduled_EmptyCart(t *testing.T) {
	svc, sub := newTestService()
	opened := time.Now()

	_, err := svc.SubmitScheduled(context.Background(), opened.Add(time.Hour), opened, "")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, sub.calls)
}

func TestSubmitScheduled_FailurePreservesCart(t *testing.T) {
	svc, sub := newTestService()
	sub.err = errors.New("insufficient stock")
	svc.Cart().AddLine(3)
	opened := time.Now()

	_, err := svc.SubmitScheduled(context.Background(), opened.Add(time.Hour), opened, "")

	require.Error(t, err)
	assert.Equal(t, StatusPopulated, svc.Cart().Status())
	assert.Len(t, svc.Cart().Lines(), 1)
}
