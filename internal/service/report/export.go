package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportFileBase is the attachment name of an export without its extension.
const ExportFileBase = "leetcode_export"

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// IsSupportedFormat reports whether format names a known export format.
func IsSupportedFormat(format string) bool {
	return format == FormatCSV || format == FormatXLSX
}

// Write serializes the export rows of svc in the given format.
func Write(ctx context.Context, svc Service, format string, w io.Writer) error {
	switch format {
	case FormatCSV:
		return WriteCSV(ctx, svc, w)
	case FormatXLSX:
		return WriteXLSX(ctx, svc, w)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV streams the export rows to w as CSV.
func WriteCSV(ctx context.Context, svc Service, w io.Writer) error {
	cw := csv.NewWriter(w)
	for row, err := range svc.ExportRows(ctx) {
		if err != nil {
			return fmt.Errorf("failed to read export rows: %w", err)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// xlsxSheet is the worksheet holding the export.
const xlsxSheet = "Sheet1"

// WriteXLSX writes the export rows to w as a single-sheet workbook.
// Rows go through the excelize stream writer, so memory stays bounded by
// the workbook's own buffers.
func WriteXLSX(ctx context.Context, svc Service, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	rowNum := 1
	for row, rowErr := range svc.ExportRows(ctx) {
		if rowErr != nil {
			return fmt.Errorf("failed to read export rows: %w", rowErr)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, lo.ToAnySlice(row)); err != nil {
			return fmt.Errorf("failed to write xlsx row %d: %w", rowNum, err)
		}
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush xlsx rows: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
