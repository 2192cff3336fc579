package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pos-register/internal/domain"
)

// ExportDailySummaryXLSX renders a daily summary as a single-sheet workbook
// for back-office download.
func ExportDailySummaryXLSX(summary *domain.DailySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Daily Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Date", summary.Date.Format("2006-01-02")},
		{},
		{"Total Orders", summary.TotalOrders},
		{"Takeaway Orders", summary.TakeAwayOrders},
		{"Delivery Orders", summary.DeliveryOrders},
		{},
		{"Total Sales", summary.TotalSales.StringFixed(2)},
		{"Takeaway Sales", summary.TakeAwaySales.StringFixed(2)},
		{"Delivery Sales", summary.DeliverySales.StringFixed(2)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
