package analytics_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"storefront/transactions/analytics"
	"storefront/transactions/model"
)

func TestReport_MergesAllThreeViews(t *testing.T) {
	ctx := context.Background()
	records := []model.Transaction{
		{Price: 100, Category: "electronics", Sold: boolPtr(true)},
		{Price: 200, Category: "jewelery", Sold: boolPtr(false)},
	}

	var calls int64
	repo := &mockRepo{
		byMonthFunc: func(ctx context.Context, month int) ([]model.Transaction, error) {
			atomic.AddInt64(&calls, 1)
			return records, nil
		},
	}

	builder := analytics.NewReportBuilder(analytics.NewMonthlyAggregator(repo))
	report, err := builder.Report(ctx, 5)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if atomic.LoadInt64(&calls) != 3 {
		t.Errorf("Expected three independent sub-queries, got %d", calls)
	}
	if report.Staticks == nil || report.Staticks.TotalSaleAmount != 300 {
		t.Errorf("Expected staticks with totalSaleAmount 300, got %+v", report.Staticks)
	}
	if len(report.BarChat) != 10 {
		t.Errorf("Expected all ten histogram buckets in barChat, got %d", len(report.BarChat))
	}
	if report.PieChar["electronics"] != 1 || report.PieChar["jewelery"] != 1 {
		t.Errorf("Expected both categories in pieChar, got %v", report.PieChar)
	}
}

func TestReport_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	expectedErr := errors.New("store unavailable")
	repo := &mockRepo{
		byMonthFunc: func(ctx context.Context, month int) ([]model.Transaction, error) {
			return nil, expectedErr
		},
	}

	builder := analytics.NewReportBuilder(analytics.NewMonthlyAggregator(repo))
	report, err := builder.Report(ctx, 7)
	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error wrapping %v, got %v", expectedErr, err)
	}
	if report != nil {
		t.Errorf("Expected no partial report on failure, got %+v", report)
	}
}

func TestReport_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	repoCalled := false
	repo := &mockRepo{
		byMonthFunc: func(ctx context.Context, month int) ([]model.Transaction, error) {
			repoCalled = true
			return nil, nil
		},
	}

	builder := analytics.NewReportBuilder(analytics.NewMonthlyAggregator(repo))
	if _, err := builder.Report(ctx, 0); !errors.Is(err, analytics.ErrInvalidMonth) {
		t.Errorf("Expected ErrInvalidMonth, got %v", err)
	}
	if repoCalled {
		t.Error("Expected month validation before any store query")
	}
}
