package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"pos-register/internal/domain"
)

// SalesAggregator produces read-only statistics over Completed orders. Both
// summaries are pure reductions: the same order set always yields the same
// output.
type SalesAggregator struct {
	orders OrderStore
	cache  SummaryCache
	now    func() time.Time
}

func NewSalesAggregator(orders OrderStore, cache SummaryCache) *SalesAggregator {
	return &SalesAggregator{orders: orders, cache: cache, now: time.Now}
}

// DailySummary reduces the Completed orders of the half-open window
// [date 00:00, date+1 00:00). An order stamped exactly at next midnight
// belongs to the next day.
func (a *SalesAggregator) DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if a.cache != nil {
		if cached, err := a.cache.GetDailySummary(ctx, day); err == nil && cached != nil {
			return cached, nil
		}
	}

	orders, err := a.orders.ListCompletedInRange(day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: list completed orders: %v", domain.ErrPersistence, err)
	}

	summary := &domain.DailySummary{Date: day}
	summary.TotalOrders, summary.TakeAwayOrders, summary.DeliveryOrders,
		summary.TotalSales, summary.TakeAwaySales, summary.DeliverySales = reduce(orders)

	if a.cache != nil {
		if err := a.cache.SetDailySummary(ctx, summary); err != nil {
			log.Printf("[reports] failed to cache daily summary for %s: %v", day.Format("2006-01-02"), err)
		}
	}
	return summary, nil
}

// ShiftSummary reduces one operator's Completed orders over [start, end). A
// zero end means "now"; the result is a point-in-time snapshot either way.
func (a *SalesAggregator) ShiftSummary(ctx context.Context, userID int, shiftStart, shiftEnd time.Time) (*domain.ShiftSummary, error) {
	if shiftEnd.IsZero() {
		shiftEnd = a.now()
	}
	orders, err := a.orders.ListCompletedForUserInRange(userID, shiftStart, shiftEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: list shift orders: %v", domain.ErrPersistence, err)
	}

	summary := &domain.ShiftSummary{UserID: userID, ShiftStart: shiftStart, ShiftEnd: shiftEnd}
	summary.TotalOrders, summary.TakeAwayOrders, summary.DeliveryOrders,
		summary.TotalSales, summary.TakeAwaySales, summary.DeliverySales = reduce(orders)
	return summary, nil
}

func reduce(orders []domain.Order) (total, takeaway, delivery int, totalSales, takeawaySales, deliverySales decimal.Decimal) {
	totalSales, takeawaySales, deliverySales = decimal.Zero, decimal.Zero, decimal.Zero
	for _, o := range orders {
		if o.OrderStatus != domain.Completed {
			continue
		}
		total++
		totalSales = totalSales.Add(o.Total)
		switch o.OrderType {
		case domain.Takeaway:
			takeaway++
			takeawaySales = takeawaySales.Add(o.Total)
		case domain.Delivery:
			delivery++
			deliverySales = deliverySales.Add(o.Total)
		}
	}
	return
}
