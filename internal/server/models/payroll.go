package models

import (
	"time"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

type Payroll struct {
	Model

	EmployeeID    uid.ID `gorm:"uniqueIndex:idx_payrolls_employee_period,where:deleted_at is NULL"`
	Month         int    `gorm:"uniqueIndex:idx_payrolls_employee_period,where:deleted_at is NULL"`
	Year          int    `gorm:"uniqueIndex:idx_payrolls_employee_period,where:deleted_at is NULL"`
	BaseSalary    float64
	Allowances    MoneyMap
	Deductions    MoneyMap
	OvertimeHours float64
	OvertimeRate  float64
	Bonuses       float64
	GrossSalary   float64
	NetSalary     float64
	Status        string
	PaymentDate   time.Time

	// EmployeeName may be populated by list queries.
	EmployeeName string `gorm:"-"`
}

// OvertimeAmount is the pay owed for overtime hours this period.
func (p *Payroll) OvertimeAmount() float64 {
	return round2(p.OvertimeHours * p.OvertimeRate)
}

// Recalculate derives gross and net salary from the pay components.
func (p *Payroll) Recalculate() {
	p.GrossSalary = round2(p.BaseSalary + p.Allowances.Sum() + p.OvertimeAmount() + p.Bonuses)
	p.NetSalary = round2(p.GrossSalary - p.Deductions.Sum())
}

func (p *Payroll) ToAPI() *api.Payroll {
	return &api.Payroll{
		ID:           p.ID,
		Created:      api.Time(p.CreatedAt),
		Updated:      api.Time(p.UpdatedAt),
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Month:        p.Month,
		Year:         p.Year,
		BaseSalary:   p.BaseSalary,
		Allowances:   p.Allowances,
		Deductions:   p.Deductions,
		Overtime: api.Overtime{
			Hours:  p.OvertimeHours,
			Rate:   p.OvertimeRate,
			Amount: p.OvertimeAmount(),
		},
		Bonuses:     p.Bonuses,
		GrossSalary: p.GrossSalary,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		PaymentDate: api.Time(p.PaymentDate),
	}
}
