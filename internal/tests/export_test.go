package tests

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"pos-register/internal/domain"
	"pos-register/internal/service"
)

func TestExportDailySummaryXLSX(t *testing.T) {
	summary := &domain.DailySummary{
		Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalOrders:    2,
		TakeAwayOrders: 1,
		DeliveryOrders: 1,
		TotalSales:     decimal.RequireFromString("42.50"),
		TakeAwaySales:  decimal.RequireFromString("12.50"),
		DeliverySales:  decimal.RequireFromString("30.00"),
	}

	payload, err := service.ExportDailySummaryXLSX(summary)
	assert.NoError(t, err)
	assert.NotEmpty(t, payload)

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	assert.NoError(t, err)
	defer workbook.Close()

	date, err := workbook.GetCellValue("Daily Summary", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-15", date)

	totalOrders, err := workbook.GetCellValue("Daily Summary", "B3")
	assert.NoError(t, err)
	assert.Equal(t, "2", totalOrders)

	totalSales, err := workbook.GetCellValue("Daily Summary", "B7")
	assert.NoError(t, err)
	assert.Equal(t, "42.50", totalSales)
}
