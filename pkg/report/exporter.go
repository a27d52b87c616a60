package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyInput is returned when Export receives no records.
var ErrEmptyInput = errors.New("report: no records to export")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format; empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("report: unsupported format %q", s)
}

func (f Format) contentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Field is one named column value of a record.
type Field struct {
	Name  string
	Value interface{}
}

type Record interface {
	ReportFields() []Field
}

// Sink stores a finished report and returns where it was written.
type Sink interface {
	Put(ctx context.Context, name string, body []byte, contentType string) (string, error)
}

type Report struct {
	Name      string   `json:"file"`
	Format    Format   `json:"format"`
	Rows      int      `json:"rows"`
	Locations []string `json:"locations"`
}

type Exporter struct {
	sinks []Sink
	now   func() time.Time
}

func NewExporter(sinks ...Sink) *Exporter {
	return &Exporter{sinks: sinks, now: time.Now}
}

// WithClock overrides the timestamp source used for file names.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// FileName derives a report name from t. Two exports within the same
// microsecond produce the same name and the later one overwrites.
func FileName(t time.Time, format Format) string {
	return t.Format("2006-01-02_15-04-05.000000") + "." + string(format)
}

// Export writes one row per record. The header is taken from the first
// record only; records whose field sets differ from it are not reconciled.
func (e *Exporter) Export(ctx context.Context, records []Record, format Format) (*Report, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := make([]string, 0)
	for _, f := range records[0].ReportFields() {
		header = append(header, f.Name)
	}

	var (
		body []byte
		err  error
	)
	switch format {
	case FormatCSV:
		body, err = encodeCSV(header, records)
	case FormatXLSX:
		body, err = encodeXLSX(header, records)
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Name:   FileName(e.now(), format),
		Format: format,
		Rows:   len(records),
	}
	for _, sink := range e.sinks {
		loc, err := sink.Put(ctx, rep.Name, body, format.contentType())
		if err != nil {
			return nil, fmt.Errorf("report: store %s: %w", rep.Name, err)
		}
		rep.Locations = append(rep.Locations, loc)
	}
	return rep, nil
}

func encodeCSV(header []string, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		fields := r.ReportFields()
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = formatValue(f.Value)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeXLSX(header []string, records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, r := range records {
		for colIdx, field := range r.ReportFields() {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			value := field.Value
			if skills, ok := value.([]string); ok {
				value = strings.Join(skills, ", ")
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range header {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("report: write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
