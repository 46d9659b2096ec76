package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// Payroll statuses.
const (
	PayrollPending   = "pending"
	PayrollProcessed = "processed"
	PayrollPaid      = "paid"
)

var PayrollStatuses = []string{PayrollPending, PayrollProcessed, PayrollPaid}

type Overtime struct {
	Hours  float64 `json:"hours"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type Payroll struct {
	ID           uid.ID             `json:"id"`
	Created      Time               `json:"created"`
	Updated      Time               `json:"updated"`
	EmployeeID   uid.ID             `json:"employeeId"`
	EmployeeName string             `json:"employeeName,omitempty"`
	Month        int                `json:"month"`
	Year         int                `json:"year"`
	BaseSalary   float64            `json:"baseSalary"`
	Allowances   map[string]float64 `json:"allowances,omitempty"`
	Deductions   map[string]float64 `json:"deductions,omitempty"`
	Overtime     Overtime           `json:"overtime"`
	Bonuses      float64            `json:"bonuses"`
	GrossSalary  float64            `json:"grossSalary"`
	NetSalary    float64            `json:"netSalary"`
	Status       string             `json:"status"`
	PaymentDate  Time               `json:"paymentDate"`
}

type GetPayrollRequest struct {
	Resource
}

type ListPayrollsRequest struct {
	Employee uid.ID `form:"employee"`
	Month    int    `form:"month"`
	Year     int    `form:"year"`
	Status   string `form:"status"`
	PaginationRequest
}

func (r ListPayrollsRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Int("month", r.Month, 1, 12),
		validate.Enum("status", r.Status, PayrollStatuses),
	}
}

type CreatePayrollRequest struct {
	EmployeeID    uid.ID             `json:"employeeId"`
	Month         int                `json:"month"`
	Year          int                `json:"year"`
	BaseSalary    float64            `json:"baseSalary"`
	Allowances    map[string]float64 `json:"allowances"`
	Deductions    map[string]float64 `json:"deductions"`
	OvertimeHours float64            `json:"overtimeHours"`
	OvertimeRate  float64            `json:"overtimeRate"`
	Bonuses       float64            `json:"bonuses"`
}

func (r CreatePayrollRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("employeeId", r.EmployeeID),
		validate.Required("month", r.Month),
		validate.Required("year", r.Year),
		validate.Int("month", r.Month, 1, 12),
		validate.Int("year", r.Year, 2000, 2200),
	}
}

type UpdatePayrollRequest struct {
	Resource
	BaseSalary    *float64           `json:"baseSalary"`
	Allowances    map[string]float64 `json:"allowances"`
	Deductions    map[string]float64 `json:"deductions"`
	OvertimeHours *float64           `json:"overtimeHours"`
	OvertimeRate  *float64           `json:"overtimeRate"`
	Bonuses       *float64           `json:"bonuses"`
	Status        string             `json:"status"`
	PaymentDate   time.Time          `json:"paymentDate"`
}

func (r UpdatePayrollRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Enum("status", r.Status, PayrollStatuses),
	}
}
