package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/warranty"
)

const sheetName = "Invoices"

var headerRow = []string{
	"Product Name",
	"Vendor",
	"Category",
	"Invoice Number",
	"Serial Number",
	"Purchase Date",
	"Amount",
	"Currency",
	"Warranty End Date",
	"Warranty Status",
	"Days Remaining",
	"Notes",
}

// ExcelWriter renders invoice lists as xlsx workbooks
type ExcelWriter struct {
	logger *zap.Logger
}

// NewExcelWriter creates a new Excel writer
func NewExcelWriter(logger *zap.Logger) *ExcelWriter {
	return &ExcelWriter{logger: logger}
}

// Write renders the annotated invoices into an xlsx workbook and streams it to w.
func (ew *ExcelWriter) Write(w io.Writer, invoices []warranty.AnnotatedInvoice) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		ew.logger.Warn("Failed to remove default sheet", zap.Error(err))
	}

	for col, title := range headerRow {
		ew.setCell(f, cellName(col, 1), title)
	}

	for i, inv := range invoices {
		row := i + 2
		ew.setCell(f, cellName(0, row), inv.ProductName)
		ew.setCell(f, cellName(1, row), inv.VendorName)
		ew.setCell(f, cellName(2, row), inv.ProductCategory)
		ew.setCell(f, cellName(3, row), inv.InvoiceNumber)
		ew.setCell(f, cellName(4, row), inv.SerialNumber)
		ew.setCell(f, cellName(5, row), inv.PurchaseDate.Format("2006-01-02"))
		ew.setCell(f, cellName(6, row), fmt.Sprintf("%.2f", inv.Amount))
		ew.setCell(f, cellName(7, row), inv.Currency)
		ew.setCell(f, cellName(8, row), formatDate(warranty.EffectiveEndDate(inv.Invoice)))
		ew.setCell(f, cellName(9, row), string(inv.WarrantyStatus))
		if inv.DaysRemaining != nil {
			ew.setCell(f, cellName(10, row), fmt.Sprintf("%d", *inv.DaysRemaining))
		}
		ew.setCell(f, cellName(11, row), inv.Notes)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	ew.logger.Info("Exported invoice workbook", zap.Int("rows", len(invoices)))
	return nil
}

// setCell sets a cell value, logging failures without aborting the export
func (ew *ExcelWriter) setCell(f *excelize.File, cell, value string) {
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		ew.logger.Warn("Failed to set cell value",
			zap.String("cell", cell),
			zap.Error(err))
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
