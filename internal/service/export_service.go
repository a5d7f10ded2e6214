package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/repository"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// Workbook sheet names and the xlsx content type.
const (
	ProductsSheet = "Products"
	TermsSheet    = "Terms"
	XLSXMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// templateRows is how many rows of the import template carry drop-lists.
	templateRows = 500
)

var (
	productHeader = []interface{}{"ID", "Reference", "Name", "Type", "Status", "Terms"}
	termHeader    = []interface{}{"Product ID", "Value", "Unit", "Description"}
)

// ExportService renders product workbooks and archives them.
type ExportService struct {
	productRepo *repository.ProductRepository
	uploader    ObjectUploader
	now         func() time.Time
}

// NewExportService constructs an ExportService. A nil uploader disables Archive.
func NewExportService(productRepo *repository.ProductRepository, uploader ObjectUploader) *ExportService {
	return &ExportService{productRepo: productRepo, uploader: uploader, now: time.Now}
}

// ArchiveResult is the location of an archived export.
type ArchiveResult struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Products int    `json:"products"`
}

// ProductsWorkbook renders every product into an xlsx workbook with one
// Products sheet and one Terms sheet.
func (s *ExportService) ProductsWorkbook(ctx context.Context) ([]byte, int, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return nil, 0, err
	}
	if _, err := f.NewSheet(TermsSheet); err != nil {
		return nil, 0, err
	}
	if err := writeHeader(f, ProductsSheet, productHeader); err != nil {
		return nil, 0, err
	}
	if err := writeHeader(f, TermsSheet, termHeader); err != nil {
		return nil, 0, err
	}

	termRow := 2
	for i, p := range products {
		row := []interface{}{p.ID, p.Reference, p.Name, p.Type, string(p.Status), len(p.Terms)}
		if err := setRow(f, ProductsSheet, i+2, row); err != nil {
			return nil, 0, err
		}
		for _, t := range p.Terms {
			if err := setRow(f, TermsSheet, termRow, []interface{}{p.ID, t.Value, t.Unit, t.Description}); err != nil {
				return nil, 0, err
			}
			termRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), len(products), nil
}

// ProductTemplate renders an empty import workbook whose type, status and
// unit columns offer the catalog values as drop-lists.
func (s *ExportService) ProductTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(TermsSheet); err != nil {
		return nil, err
	}
	if err := writeHeader(f, ProductsSheet, []interface{}{"Name", "Type", "Status"}); err != nil {
		return nil, err
	}
	if err := writeHeader(f, TermsSheet, []interface{}{"Product Name", "Value", "Unit", "Description"}); err != nil {
		return nil, err
	}

	units := make([]string, 0, len(models.TermUnits))
	for _, u := range models.TermUnits {
		units = append(units, u.Value)
	}
	statuses := []string{
		string(models.ProductStatusActive),
		string(models.ProductStatusInactive),
		string(models.ProductStatusDraft),
	}

	lists := []struct {
		sheet, col string
		values     []string
	}{
		{ProductsSheet, "B", models.ProductTypes},
		{ProductsSheet, "C", statuses},
		{TermsSheet, "C", units},
	}
	for _, l := range lists {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", l.col, l.col, templateRows+1)
		if err := dv.SetDropList(l.values); err != nil {
			return nil, fmt.Errorf("failed to build drop-list for %s!%s: %w", l.sheet, l.col, err)
		}
		if err := f.AddDataValidation(l.sheet, dv); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive uploads the current product workbook.
func (s *ExportService) Archive(ctx context.Context) (*ArchiveResult, error) {
	if s.uploader == nil {
		return nil, utils.ErrExportDisabled
	}

	data, count, err := s.ProductsWorkbook(ctx)
	if err != nil {
		return nil, err
	}

	name := ExportFileName(s.now())
	location, err := s.uploader.Upload(ctx, name, data, XLSXMediaType)
	if err != nil {
		return nil, err
	}

	log.Info().Str("name", name).Int("products", count).Msg("Product export archived")
	return &ArchiveResult{Name: name, Location: location, Products: count}, nil
}

// ExportFileName names a product workbook taken at t.
func ExportFileName(t time.Time) string {
	return "products-" + t.UTC().Format("20060102-150405") + ".xlsx"
}

// ReportFileName names the text report of a scenario.
func ReportFileName(reference string) string {
	return "scenario-" + strings.ToLower(reference) + ".txt"
}

func writeHeader(f *excelize.File, sheet string, header []interface{}) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
