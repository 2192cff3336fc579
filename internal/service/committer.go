package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"pos-register/internal/domain"
)

// orderSeq is a process-wide monotonic counter combined with the date in the
// order number. Wall-clock alone is not unique under rapid sequential commits.
var orderSeq atomic.Uint64

// OrderCommitter transitions a validated order into its terminal persisted
// form. The store writes the order, its items and any new or modified
// customer in one transaction.
type OrderCommitter struct {
	orders    OrderStore
	publisher OrderPublisher
	qr        QRGenerator
}

func NewOrderCommitter(orders OrderStore, publisher OrderPublisher, qr QRGenerator) *OrderCommitter {
	return &OrderCommitter{orders: orders, publisher: publisher, qr: qr}
}

// Commit stamps the payment and order number, persists atomically and returns
// the stored order. On a storage failure the order reverts to Pending with the
// entered items intact so the operator can retry.
func (c *OrderCommitter) Commit(ctx context.Context, order *domain.Order, payment Payment) (*domain.Order, error) {
	if order.OrderStatus != domain.Pending {
		return nil, domain.ErrInvalidState
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if payment.AmountPaid.Cmp(order.Total) < 0 {
		return nil, domain.ErrInsufficientPayment
	}
	switch order.OrderType {
	case domain.Delivery:
		if order.Customer == nil {
			return nil, fmt.Errorf("%w: delivery order requires a customer", domain.ErrValidation)
		}
	case domain.Takeaway:
		if order.Customer != nil || order.CustomerID != nil {
			return nil, fmt.Errorf("%w: takeaway order must not carry a customer", domain.ErrValidation)
		}
	}

	// The store scans generated IDs into the order and its customer as it
	// writes; keep the pre-commit identity so a failed transaction can be
	// fully undone in memory.
	prevCustomerID := order.CustomerID
	var prevCustomerRecordID int
	if order.Customer != nil {
		prevCustomerRecordID = order.Customer.ID
	}

	order.OrderNumber = nextOrderNumber()
	order.OrderStatus = domain.Completed
	order.AmountPaid = payment.AmountPaid
	order.Change = payment.Change

	if err := c.orders.CommitOrder(order); err != nil {
		order.OrderStatus = domain.Pending
		order.OrderNumber = ""
		order.AmountPaid = decimal.Zero
		order.Change = decimal.Zero
		order.CustomerID = prevCustomerID
		if order.Customer != nil {
			order.Customer.ID = prevCustomerRecordID
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if c.qr != nil {
		if png, err := c.qr.Generate(order.OrderNumber); err != nil {
			log.Printf("[committer] failed to generate QR for order %s: %v", order.OrderNumber, err)
		} else if err := c.orders.SaveOrderQRCode(order.ID, png); err != nil {
			log.Printf("[committer] failed to store QR for order %s: %v", order.OrderNumber, err)
		}
	}

	if c.publisher != nil {
		event := domain.OrderEvent{
			Type:        "order_completed",
			OrderNumber: order.OrderNumber,
			OrderType:   order.OrderType,
			Total:       order.Total,
			UserID:      order.UserID,
			Timestamp:   time.Now(),
		}
		if err := c.publisher.PublishOrderCompleted(ctx, event); err != nil {
			log.Printf("[committer] failed to publish event for order %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

func nextOrderNumber() string {
	seq := orderSeq.Add(1)
	return fmt.Sprintf("ORD%s-%06d", time.Now().Format("20060102"), seq%1000000)
}
