package api

import "github.com/workforcehq/workforce/uid"

// User is the authenticated view of a credential and its employee record.
type User struct {
	ID         uid.ID `json:"id"`
	EmployeeID uid.ID `json:"employeeId"`
	LoginID    string `json:"loginId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}
