package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"reservas-backend/models"
)

func workbookWithColumn(t *testing.T, cells []string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func categoryNames(categories []models.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}

func TestParseCategoriesHeaderColumn(t *testing.T) {
	buf := workbookWithColumn(t, []string{"Tour", "Surf", "Surf", "Dive"})

	categories, err := ParseCategories(buf)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Surf", "Dive"}, categoryNames(categories))
	byName := make(map[string]string)
	for _, c := range categories {
		byName[c.Name] = c.ID
	}
	assert.Equal(t, "surf", byName["Surf"])
	assert.Equal(t, "dive", byName["Dive"])
}

func TestParseCategoriesSlugCollapsesWhitespace(t *testing.T) {
	buf := workbookWithColumn(t, []string{"Actividad", "Tour  de   Snorkel"})

	categories, err := ParseCategories(buf)
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, "tour-de-snorkel", categories[0].ID)
	assert.Equal(t, "Tour  de   Snorkel", categories[0].Name)
}

func TestParseCategoriesPicksMatchingColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Fecha", "Categoria"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"2024-03-15", "Surf"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"2024-03-16", "Dive"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	categories, err := ParseCategories(buf)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Surf", "Dive"}, categoryNames(categories))
}

func TestParseCategoriesHeaderlessSheetLosesFirstRow(t *testing.T) {
	// No header keyword matches, so column 0 is used - but physical row 0
	// is skipped anyway. "Surf" is lost; this asymmetry is intentional.
	buf := workbookWithColumn(t, []string{"Surf", "Dive"})

	categories, err := ParseCategories(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dive"}, categoryNames(categories))
}

func TestParseCategoriesSkipsEmptyAndTrims(t *testing.T) {
	buf := workbookWithColumn(t, []string{"Tour", "  Surf  ", "", "   "})

	categories, err := ParseCategories(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Surf"}, categoryNames(categories))
}

func TestParseCategoriesRejectsUnreadableFile(t *testing.T) {
	_, err := ParseCategories(strings.NewReader("this is not a workbook"))

	assert.ErrorIs(t, err, ErrInvalidWorkbook)
}

func exportFixture() []models.Reservation {
	return []models.Reservation{
		{
			ID: "1", ClientName: "Ana", Date: "2024-03-15", Time: "09:00",
			Activity: "Surf", Responsible: "María", Seller: "Mahana Tours",
			Price: 100, Cost: 20, Commission: 10, Status: models.StatusPagado,
		},
		{
			ID: "2", ClientName: "Luis", Date: "2024-03-14", Time: "08:00",
			Activity: "Surf", Responsible: "María", Seller: "Otros",
			Price: 80, Cost: 10, Commission: 0, Status: models.StatusConsulta,
		},
		{
			ID: "3", ClientName: "Eva", Date: "2024-03-15", Time: "",
			Activity: "Dive", Responsible: models.ResponsibleUnassigned, Seller: "Playa Caracol",
			Price: 50, Cost: 5, Commission: 5, Status: models.StatusReservado,
		},
	}
}

func TestExportWorkbookComputesFinancials(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportWorkbook(&buf, exportFixture()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	// First master row is Ana: price 100, commission 10% -> 10, net 70.
	amount, err := f.GetCellValue("Todas las Reservas", "K2")
	require.NoError(t, err)
	assert.Equal(t, "10", amount)

	profit, err := f.GetCellValue("Todas las Reservas", "L2")
	require.NoError(t, err)
	assert.Equal(t, "70", profit)
}

func TestExportWorkbookSheetLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportWorkbook(&buf, exportFixture()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Todas las Reservas", "Surf", "Dive"}, sheets)

	master, err := f.GetRows("Todas las Reservas")
	require.NoError(t, err)
	require.Len(t, master, 4, "header plus one row per reservation")
	assert.Equal(t, "Fecha", master[0][0])
	assert.Equal(t, "Gestionado por", master[0][13])

	// Activity sheet row counts sum to the master row count.
	activityRows := 0
	for _, sheet := range sheets[1:] {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		activityRows += len(rows) - 1
	}
	assert.Equal(t, len(master)-1, activityRows)
}

func TestExportWorkbookSortsActivitySheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportWorkbook(&buf, exportFixture()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Surf")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Luis", rows[1][2], "activity sheets sort by date then time")
	assert.Equal(t, "Ana", rows[2][2])
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "Surf  Dive", safeSheetName(`Surf [/ Dive?*\]`))

	long := strings.Repeat("a", 40)
	assert.Len(t, safeSheetName(long), 30)
}
