// services/excel_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"reservas-backend/models"
)

// ExportFilename is the download name offered to the user.
const ExportFilename = "Reservas_Operativas.xlsx"

// masterSheet holds every reservation; one extra sheet is added per activity.
const masterSheet = "Todas las Reservas"

// ErrInvalidWorkbook is returned when an uploaded file cannot be read as a
// spreadsheet. No partial categories are ever returned alongside it.
var ErrInvalidWorkbook = errors.New("invalid workbook file")

// exportHeader lists the 14 columns of every exported sheet, in order.
var exportHeader = []interface{}{
	"Fecha", "Hora", "Cliente", "Estatus", "Vendedor", "Actividad",
	"Responsable", "Precio (Ingreso)", "Costo (Pago)", "Comisión (%)",
	"Monto Comisión", "Ganancia Mahana", "Notas", "Gestionado por",
}

// ParseCategories reads category names from the first sheet of an uploaded
// workbook. Row 0 is treated as a header row: the first column whose
// lower-cased header contains "activ", "tour" or "cat" wins, defaulting to
// column 0 when nothing matches. Data collection always starts at row 1,
// so a headerless sheet loses its first data row - a quirk kept from the
// original import, asserted as-is by the tests.
func ParseCategories(r io.Reader) ([]models.Category, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrInvalidWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return []models.Category{}, nil
	}

	colIndex := 0
	for i, header := range rows[0] {
		h := strings.ToLower(header)
		if strings.Contains(h, "activ") || strings.Contains(h, "tour") || strings.Contains(h, "cat") {
			colIndex = i
			break
		}
	}

	seen := make(map[string]struct{})
	categories := []models.Category{}
	for _, row := range rows[1:] {
		if colIndex >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[colIndex])
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, models.NewCategory(name))
	}
	return categories, nil
}

// sheetNameSanitizer strips the characters Excel forbids in sheet names.
var sheetNameSanitizer = strings.NewReplacer(`\`, "", "/", "", "?", "", "*", "", "[", "", "]", "")

// safeSheetName truncates to the 30-character budget and removes forbidden
// characters, matching the constraints of the export format.
func safeSheetName(activity string) string {
	runes := []rune(activity)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return sheetNameSanitizer.Replace(string(runes))
}

func appendRow(f *excelize.File, sheet string, rowNum int, r models.Reservation) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &[]interface{}{
		r.Date, r.Time, r.ClientName, string(r.Status), r.Seller, r.Activity,
		r.Responsible, r.Price, r.Cost, r.Commission,
		r.CommissionAmount(), r.NetProfit(), r.Notes, r.ManagedBy,
	})
}

func writeSheet(f *excelize.File, sheet string, reservations []models.Reservation) error {
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, r := range reservations {
		if err := appendRow(f, sheet, i+2, r); err != nil {
			return err
		}
	}
	return nil
}

// ExportWorkbook writes the full reservation collection to w as a
// multi-sheet workbook: one master sheet in collection order, then one
// sheet per distinct activity sorted by date and time. Each row carries
// the computed commission amount and net profit.
func ExportWorkbook(w io.Writer, reservations []models.Reservation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", masterSheet); err != nil {
		return err
	}
	if err := writeSheet(f, masterSheet, reservations); err != nil {
		return err
	}

	// Distinct activities in order of first appearance.
	var activities []string
	seen := make(map[string]struct{})
	for _, r := range reservations {
		if _, dup := seen[r.Activity]; dup {
			continue
		}
		seen[r.Activity] = struct{}{}
		activities = append(activities, r.Activity)
	}

	for _, activity := range activities {
		var rows []models.Reservation
		for _, r := range reservations {
			if r.Activity == activity {
				rows = append(rows, r)
			}
		}
		if len(rows) == 0 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date+"T"+rows[i].SortTime() < rows[j].Date+"T"+rows[j].SortTime()
		})
		sheet := safeSheetName(activity)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, rows); err != nil {
			return err
		}
	}

	return f.Write(w)
}
