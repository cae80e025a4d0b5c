package core

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/utils"
)

var exportColumns = []string{"ID", "Worker Name", "Date", "Check In", "Check Out", "Status", "Notes"}

// ExportAttendanceCSV serializes every attendance record, newest first. The
// header line is always present. Fields are joined bare, without quoting;
// the column layout is a fixed external contract.
func (s *Service) ExportAttendanceCSV() ([]byte, error) {
	records, err := s.ListAttendance()
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(strings.Join(exportColumns, ","))
	b.WriteString("\n")
	lines := utils.Map(records, func(r model.AttendanceRecord) string {
		return strings.Join(exportRow(r), ",")
	})
	b.WriteString(strings.Join(lines, "\n"))
	return []byte(b.String()), nil
}

// ExportAttendanceXLSX renders the same rows as a spreadsheet, for
// deployments whose settings prefer Excel-flavored exports.
func (s *Service) ExportAttendanceXLSX() ([]byte, error) {
	records, err := s.ListAttendance()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		fields := exportRow(r)
		row := make([]interface{}, len(fields))
		for j, v := range fields {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(r model.AttendanceRecord) []string {
	return []string{
		r.ID,
		r.WorkerName,
		r.Date,
		utils.LocalClock(r.CheckIn),
		utils.LocalClock(r.CheckOut),
		string(r.Status),
		r.Notes,
	}
}
