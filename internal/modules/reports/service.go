package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/milhoverde/oficina-backend/internal/modules/expense"
	"github.com/milhoverde/oficina-backend/internal/modules/serviceorder"
)

const (
	dayLayout   = "02/01/2006"
	monthLayout = "01/2006"
)

// Service aggregates finalized orders and expenses into reports. It
// reads through the order and expense services and keeps no state of
// its own.
type Service interface {
	// DailySales reports the orders finalized on day (dd/MM/yyyy).
	DailySales(ctx context.Context, day string) (*SalesReport, error)

	// MonthlySales reports the orders finalized in month (MM/yyyy).
	MonthlySales(ctx context.Context, month string) (*SalesReport, error)

	// MonthlyBalance sets the month's revenue against its expenses.
	MonthlyBalance(ctx context.Context, month string) (*BalanceReport, error)
}

type service struct {
	orderSvc   serviceorder.Service
	expenseSvc expense.Service
}

// NewService creates a new reports service.
func NewService(orderSvc serviceorder.Service, expenseSvc expense.Service) Service {
	return &service{orderSvc: orderSvc, expenseSvc: expenseSvc}
}

func (s *service) DailySales(ctx context.Context, day string) (*SalesReport, error) {
	target, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil, fmt.Errorf("invalid date, use %s: %w", dayLayout, err)
	}
	return s.sales(ctx, day, func(issued time.Time) bool {
		y1, m1, d1 := issued.Date()
		y2, m2, d2 := target.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	})
}

func (s *service) MonthlySales(ctx context.Context, month string) (*SalesReport, error) {
	target, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("invalid month, use %s: %w", monthLayout, err)
	}
	return s.sales(ctx, month, func(issued time.Time) bool {
		return issued.Year() == target.Year() && issued.Month() == target.Month()
	})
}

// sales walks every order and keeps the finalized ones whose issue time
// matches. Orders without an issue timestamp never match.
func (s *service) sales(ctx context.Context, period string, match func(time.Time) bool) (*SalesReport, error) {
	orders, err := s.orderSvc.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	report := &SalesReport{Period: period, Orders: []OrderLine{}}
	for _, o := range orders {
		if o.Status != serviceorder.StatusFinalized || o.IssuedAt == nil {
			continue
		}
		if !match(o.IssuedAt.Time) {
			continue
		}
		report.Orders = append(report.Orders, OrderLine{
			OrderID:    o.ID,
			Reference:  o.Reference,
			ClientName: o.ClientName,
			Total:      o.Total,
		})
		report.Revenue += o.Total
	}
	report.OrderCount = len(report.Orders)
	return report, nil
}

func (s *service) MonthlyBalance(ctx context.Context, month string) (*BalanceReport, error) {
	sales, err := s.MonthlySales(ctx, month)
	if err != nil {
		return nil, err
	}
	target, _ := time.Parse(monthLayout, month)

	expenses, err := s.expenseSvc.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	totalExpenses := 0.0
	for _, e := range expenses {
		if e.Date.Year() == target.Year() && e.Date.Month() == target.Month() {
			totalExpenses += e.Value
		}
	}

	result := sales.Revenue - totalExpenses
	status := ResultBreakEven
	switch {
	case result > 0:
		status = ResultProfit
	case result < 0:
		status = ResultLoss
	}

	return &BalanceReport{
		Period:        month,
		Revenue:       sales.Revenue,
		TotalExpenses: totalExpenses,
		Result:        result,
		Status:        status,
	}, nil
}
