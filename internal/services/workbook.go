package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"trackrecord/cv-rater/internal/rating"
)

const workbookSheet = "Ratings"

// workbookService appends records to a local .xlsx workbook. It covers
// deployments without shared-sheet credentials and doubles as an audit copy.
type workbookService struct {
	path string
	mu   sync.Mutex
}

func NewWorkbookService(path string) RecordAppender {
	return &workbookService{path: path}
}

// AppendRecord implements RecordAppender. The workbook is created with a
// header row on first use; afterwards each record becomes the next row.
func (w *workbookService) AppendRecord(ctx context.Context, rec rating.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, fresh, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if fresh {
		if err := writeWorkbookRow(f, 1, rating.Header()); err != nil {
			return err
		}
	}

	rows, err := f.GetRows(workbookSheet)
	if err != nil {
		return fmt.Errorf("failed to read workbook rows: %w", err)
	}

	if err := writeWorkbookRow(f, len(rows)+1, rec.Row()); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func (w *workbookService) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		f := excelize.NewFile()
		if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
			return nil, false, fmt.Errorf("failed to init workbook sheet: %w", err)
		}
		return f, true, nil
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook: %w", err)
	}
	return f, false, nil
}

func writeWorkbookRow(f *excelize.File, rowNum int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(workbookSheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
