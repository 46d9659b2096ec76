package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/logging"
)

const payrollSheetName = "Payroll Report"

// exportPayrollHandler writes the payroll report as an xlsx workbook. It
// is registered as a plain gin handler because the response body is a
// file, not JSON.
func (a *API) exportPayrollHandler(c *gin.Context) {
	req := &api.PayrollReportRequest{}
	if err := bind(c, req); err != nil {
		sendAPIError(c, err)
		return
	}

	rows, err := access.PayrollReport(c, req)
	if err != nil {
		sendAPIError(c, err)
		return
	}

	workbook, err := buildPayrollWorkbook(rows)
	if err != nil {
		sendAPIError(c, err)
		return
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			logging.L.Warn().Err(err).Msg("close payroll workbook")
		}
	}()

	filename := "payroll-report.xlsx"
	if req.Year != 0 {
		filename = fmt.Sprintf("payroll-report-%d.xlsx", req.Year)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		logging.L.Error().Err(err).Msg("write payroll workbook")
	}
}

func buildPayrollWorkbook(rows []api.PayrollReportRow) (*excelize.File, error) {
	workbook := excelize.NewFile()
	if err := workbook.SetSheetName("Sheet1", payrollSheetName); err != nil {
		return nil, err
	}

	header := []interface{}{"Month", "Year", "Employees", "Total Gross", "Total Net", "Total Paid"}
	if err := workbook.SetSheetRow(payrollSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Month, row.Year, row.Employees, row.TotalGross, row.TotalNet, row.TotalPaid}
		if err := workbook.SetSheetRow(payrollSheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return workbook, nil
}
