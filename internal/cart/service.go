package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// OrderItem is one product/quantity pair of a submitted order.
type OrderItem struct {
	ProductID int
	Quantity  int
}

// Order is the one-way snapshot derived from the cart at submit time. It is
// not the cart: once built it no longer tracks cart mutations.
type Order struct {
	Items []OrderItem

	// Exactly one of CompleteNow / CompletionDate is meaningful.
	CompleteNow    bool
	CompletionDate time.Time
	Note           string

	// ClientRef lets the backend deduplicate a resubmitted order.
	ClientRef string
}

// Receipt is what the backend reports for a created order.
type Receipt struct {
	OrderID int
	Status  string
}

// Submitter sends a finished order to the backend.
type Submitter interface {
	CreateOrder(ctx context.Context, order Order) (Receipt, error)
}

// Service orchestrates cart submission: it owns the Submitting transitions
// and guarantees that local state only changes after the server confirms.
type Service struct {
	cart      *Cart
	submitter Submitter
	now       func() time.Time
}

func NewService(c *Cart, s Submitter) *Service {
	return &Service{cart: c, submitter: s, now: time.Now}
}

func (s *Service) Cart() *Cart { return s.cart }

// SubmitImmediate sends the cart as a complete-now order. On success the
// cart is emptied and the pre-submission total is returned for the success
// notification; on failure the cart is left untouched for retry.
func (s *Service) SubmitImmediate(ctx context.Context) (total int, rcpt Receipt, err error) {
	if err := s.cart.BeginSubmit(); err != nil {
		return 0, Receipt{}, err
	}
	total = s.cart.Subtotal()
	order := s.snapshot()
	order.CompleteNow = true

	rcpt, err = s.submitter.CreateOrder(ctx, order)
	if err != nil {
		s.cart.FinishSubmit(false)
		log.WithError(err).Warn("immediate order submission failed")
		return 0, Receipt{}, err
	}
	s.cart.FinishSubmit(true)
	log.WithFields(log.Fields{"order_id": rcpt.OrderID, "total": total}).Info("order completed")
	return total, rcpt, nil
}

// SubmitScheduled sends the cart as an order to be completed at completeAt.
// openedAt is the instant the scheduling form was opened; it is the lower
// bound for completeAt, enforced here before any network traffic. On failure
// both the cart and the caller's form state survive.
func (s *Service) SubmitScheduled(ctx context.Context, completeAt, openedAt time.Time, note string) (Receipt, error) {
	if completeAt.Before(openedAt) {
		return Receipt{}, ErrPastCompletion
	}
	if err := s.cart.BeginSubmit(); err != nil {
		return Receipt{}, err
	}
	order := s.snapshot()
	order.CompletionDate = completeAt
	order.Note = note

	rcpt, err := s.submitter.CreateOrder(ctx, order)
	if err != nil {
		s.cart.FinishSubmit(false)
		log.WithError(err).Warn("scheduled order submission failed")
		return Receipt{}, err
	}
	s.cart.FinishSubmit(true)
	log.WithFields(log.Fields{"order_id": rcpt.OrderID, "complete_at": completeAt}).Info("order scheduled")
	return rcpt, nil
}

func (s *Service) snapshot() Order {
	lines := s.cart.Lines()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return Order{Items: items, ClientRef: uuid.NewString()}
}
