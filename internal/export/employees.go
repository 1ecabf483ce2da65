// Package export выгружает список сотрудников в Excel.
package export

import (
	"fmt"
	"io"

	"github.com/cafe-employee-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName - имя листа со списком сотрудников
const SheetName = "Employees"

var headers = []any{"Employee ID", "Name", "Email", "Phone", "Gender", "Start date", "Days worked", "Cafe"}

// WriteEmployees пишет книгу .xlsx: строка заголовков и по строке на сотрудника
func WriteEmployees(w io.Writer, employees []domain.EmployeeSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, emp := range employees {
		cafeName := ""
		if emp.Cafe != nil {
			cafeName = emp.Cafe.Name
		}

		row := []any{
			emp.EmployeeID,
			emp.Name,
			emp.Email,
			emp.Phone,
			string(emp.Gender),
			emp.StartDate.Format(domain.DateLayout),
			emp.DaysWorked,
			cafeName,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
