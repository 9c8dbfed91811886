package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// workbook собирает книгу из строк; первая строка - заголовок
func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &rows[i]))
	}

	buf := &bytes.Buffer{}
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf
}

func TestParse_TemplateRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteTemplate(buf, SampleItems()))

	items, err := Parse(buf, domain.MaxManifestRows)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "PAL-001", items[0].Reference)
	assert.Equal(t, 2, items[0].Line)
	assert.Equal(t, domain.PalletFootprint, items[0].Cargo)
	assert.True(t, items[0].Valid())
	assert.Equal(t, 2500.0, items[1].Cargo.Width)
}

// TestParse_HeaderCaseAndOrder проверяет поиск колонок без учёта регистра
// и в произвольном порядке, без колонки reference.
func TestParse_HeaderCaseAndOrder(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Length", " WIDTH ", "Height"},
		{1100, 1200, 2500},
	})

	items, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.Dimensions{Width: 1200, Height: 2500, Length: 1100}, items[0].Cargo)
	assert.Empty(t, items[0].Reference)
}

func TestParse_InvalidRowsReported(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"reference", "width", "height", "length"},
		{"A", "wide", 1000, 1000},
		{"B", 1000, "", 1000},
		{"C", -5, 1000, 1000},
		{},
		{"D", "1200,5", 1000, 1000},
	})

	items, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Len(t, items, 4, "blank row is skipped")

	assert.Contains(t, items[0].Err, "width")
	assert.Contains(t, items[1].Err, "height")
	assert.NotEmpty(t, items[2].Err)
	assert.True(t, items[3].Valid())
	assert.Equal(t, 1200.5, items[3].Cargo.Width)
	assert.Equal(t, 6, items[3].Line)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "1200", want: 1200},
		{name: "decimal point", input: "1200.5", want: 1200.5},
		{name: "decimal comma", input: "1200,5", want: 1200.5},
		{name: "two decimals after comma", input: "0,25", want: 0.25},
		{name: "thousands comma", input: "1,200", wantErr: true},
		{name: "thousands and decimal", input: "1.200,5", wantErr: true},
		{name: "two thousands groups", input: "1,200,000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "text", input: "wide", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ThousandsSeparatorRejected(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"reference", "width", "height", "length"},
		{"A", "1,200", 1000, 1000},
	})

	items, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Valid())
	assert.Contains(t, items[0].Err, "width")
}

// TestParse_FormattedNumberReadRaw числовая ячейка с форматом разрядов
// читается как число, а не как отображаемый текст.
func TestParse_FormattedNumberReadRaw(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"width", "height", "length"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{1200, 1000, 1000}))

	thousands := "#,##0"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &thousands})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "A2", "A2", style))

	buf := &bytes.Buffer{}
	_, err = f.WriteTo(buf)
	require.NoError(t, err)

	items, err := Parse(buf, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Valid(), items[0].Err)
	assert.Equal(t, 1200.0, items[0].Cargo.Width)
}

func TestParse_MissingColumn(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"reference", "width"},
		{"A", 1000},
	})

	_, err := Parse(buf, 0)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "height, length")
}

func TestParse_TooManyRows(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"width", "height", "length"},
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	_, err := Parse(buf, 2)
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestParse_NotAWorkbook(t *testing.T) {
	_, err := Parse(strings.NewReader("width,height,length\n1,1,1"), 0)
	assert.ErrorIs(t, err, ErrOpenWorkbook)
}

// TestBuildPlan_AccumulatesPlacements проверяет, что каждая позиция
// учитывает ячейки, занятые предыдущими строками.
func TestBuildPlan_AccumulatesPlacements(t *testing.T) {
	layout := allocator.DefaultLayout()
	occupied := []int{1, 2, 5, 6}

	items := []Item{
		{Line: 2, Reference: "crate", Cargo: domain.Dimensions{Width: 1300, Height: 1000, Length: 1200}},
		{Line: 3, Reference: "bad", Err: "width: value is empty"},
		{Line: 4, Reference: "pallet", Cargo: domain.PalletFootprint},
		{Line: 5, Reference: "huge", Cargo: domain.Dimensions{Width: 7000, Height: 1000, Length: 1000}},
	}

	plan := BuildPlan(layout, occupied, items, domain.DefaultPriceTiers)

	require.Len(t, plan.Lines, 4)
	assert.Equal(t, []int{3, 4, 7, 8}, plan.Lines[0].Cells)
	assert.Equal(t, OutcomeInvalid, plan.Lines[1].Outcome)
	assert.Equal(t, []int{9}, plan.Lines[2].Cells)
	assert.Equal(t, allocator.OutcomeDoesNotFit, plan.Lines[3].Outcome)

	assert.Equal(t, 2, plan.Placed)
	assert.Equal(t, 1, plan.Rejected)
	assert.Equal(t, 1, plan.Invalid)
	assert.Equal(t, []int{3, 4, 7, 8, 9}, plan.Cells)
	assert.Equal(t, 1200.0, plan.TotalPrice)
	assert.Equal(t, []int{1, 2, 5, 6}, occupied)
}
