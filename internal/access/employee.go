package access

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/generate"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/loginid"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

const (
	loginIDSavePoint  = "issue_login_id"
	maxSerialAttempts = 3
)

// CreateEmployee stores a new employee record, issues its identifiers,
// and creates a login credential, all in the request transaction. The
// generated password is returned exactly once.
func CreateEmployee(c *gin.Context, r *api.CreateEmployeeRequest) (*models.Employee, string, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, "", HandleAuthErr(err, "employee", "create", api.RoleAdmin, api.RoleHR)
	}

	hireDate := r.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now().UTC()
	}

	role := r.Role
	if role == "" {
		role = api.RoleEmployee
	}

	employee := &models.Employee{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		CompanyName:  r.CompanyName,
		Position:     r.Position,
		Status:       api.StatusActive,
		HireDate:     hireDate,
		BaseSalary:   r.BaseSalary,
		DepartmentID: r.DepartmentID,
	}

	password, err := generate.Password()
	if err != nil {
		return nil, "", err
	}

	if _, err := createEmployeeWithCredential(db, employee, role, password); err != nil {
		return nil, "", err
	}

	return employee, password, nil
}

// createEmployeeWithCredential allocates the employee number and login
// ID, stores the employee, and creates the matching credential. Callers
// must pass a transaction so the employee and credential land together.
func createEmployeeWithCredential(db *gorm.DB, employee *models.Employee, role, password string) (*models.Credential, error) {
	number, err := data.NextEmployeeNumber(db)
	if err != nil {
		return nil, err
	}
	employee.EmployeeID = number

	identity := loginid.New(employee.CompanyName, employee.FirstName, employee.LastName, employee.HireDate.Year())
	if err := issueLoginID(db, employee, identity); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	credential := &models.Credential{
		EmployeeID:   employee.ID,
		LoginID:      employee.LoginID,
		Email:        employee.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := data.CreateCredential(db, credential); err != nil {
		return nil, err
	}

	return credential, nil
}

// issueLoginID allocates serials until the insert succeeds. The counter
// makes collisions unlikely; the retry covers IDs issued outside the
// counter. The savepoint is required because postgres aborts the whole
// transaction after a constraint violation.
func issueLoginID(tx *gorm.DB, employee *models.Employee, identity loginid.Identity) error {
	for attempt := 1; ; attempt++ {
		if err := tx.SavePoint(loginIDSavePoint).Error; err != nil {
			return err
		}

		serial, err := data.AllocateLoginSerial(tx, identity)
		if err != nil {
			return err
		}
		employee.LoginID = identity.WithSerial(serial)

		err = data.CreateEmployee(tx, employee)
		switch {
		case err == nil:
			return nil
		case !isLoginIDConflict(err) || attempt == maxSerialAttempts:
			return err
		}

		if err := tx.RollbackTo(loginIDSavePoint).Error; err != nil {
			return err
		}
		// the failed insert may have assigned an ID
		employee.Model = models.Model{}
	}
}

func isLoginIDConflict(err error) bool {
	var ucErr data.UniqueConstraintError
	if !errors.As(err, &ucErr) {
		return false
	}
	return ucErr.Column == "loginId" || ucErr.Column == "login_id"
}

func GetEmployee(c *gin.Context, id uid.ID) (*models.Employee, error) {
	rCtx := GetRequestContext(c)
	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	if err := IsAuthorized(rCtx, roles...); err != nil {
		// employees can always read their own record
		self := rCtx.Authenticated.Employee
		if self == nil || self.ID != id {
			return nil, HandleAuthErr(err, "employee", "get", roles...)
		}
	}

	return data.GetEmployee(rCtx.DBTxn, data.ByID(id))
}

func ListEmployees(c *gin.Context, r *api.ListEmployeesRequest) ([]models.Employee, *models.Pagination, error) {
	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	db, err := RequireRole(c, roles...)
	if err != nil {
		return nil, nil, HandleAuthErr(err, "employees", "list", roles...)
	}

	p := models.RequestToPagination(r.PaginationRequest)
	employees, err := data.ListEmployees(db, &p,
		data.ByOptionalStatus(r.Status),
		data.ByOptionalDepartment(r.Department),
		data.ByEmployeeSearch(r.Search),
	)
	if err != nil {
		return nil, nil, err
	}

	return employees, &p, nil
}

func UpdateEmployee(c *gin.Context, r *api.UpdateEmployeeRequest) (*models.Employee, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "employee", "update", api.RoleAdmin, api.RoleHR)
	}

	employee, err := data.GetEmployee(db, data.ByID(r.ID))
	if err != nil {
		return nil, err
	}

	if r.FirstName != "" {
		employee.FirstName = r.FirstName
	}
	if r.LastName != "" {
		employee.LastName = r.LastName
	}
	if r.Phone != "" {
		employee.Phone = r.Phone
	}
	if r.Position != "" {
		employee.Position = r.Position
	}
	if r.Status != "" {
		employee.Status = r.Status
	}
	if !r.HireDate.IsZero() {
		employee.HireDate = r.HireDate
	}
	if r.BaseSalary != 0 {
		employee.BaseSalary = r.BaseSalary
	}
	if r.DepartmentID != 0 {
		employee.DepartmentID = r.DepartmentID
	}

	emailChanged := r.Email != "" && r.Email != employee.Email
	if emailChanged {
		employee.Email = r.Email
	}

	if err := data.SaveEmployee(db, employee); err != nil {
		return nil, err
	}

	if emailChanged {
		// keep the login credential in sync with the employee record
		credential, err := data.GetCredential(db, data.ByEmployeeID(employee.ID))
		if err != nil {
			return nil, err
		}
		credential.Email = employee.Email
		if err := data.SaveCredential(db, credential); err != nil {
			return nil, err
		}
	}

	return employee, nil
}

// DeleteEmployee removes the employee record and revokes its login
// credential.
func DeleteEmployee(c *gin.Context, id uid.ID) error {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return HandleAuthErr(err, "employee", "delete", api.RoleAdmin, api.RoleHR)
	}

	employee, err := data.GetEmployee(db, data.ByID(id))
	if err != nil {
		return err
	}

	credential, err := data.GetCredential(db, data.ByEmployeeID(employee.ID))
	switch {
	case err == nil:
		if err := data.DeleteCredential(db, credential.ID); err != nil {
			return err
		}
	case !errors.Is(err, internal.ErrNotFound):
		return err
	}

	return data.DeleteEmployee(db, employee.ID)
}
