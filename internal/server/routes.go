package server

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/logging"
	"github.com/workforcehq/workforce/internal/validate"
)

// Routes is the return value of GenerateRoutes.
type Routes struct {
	http.Handler
	OpenAPIDocument openapi3.T
}

// GenerateRoutes constructs the http.Handler for the API server. The
// handler includes gin middleware and all API routes.
//
// The returned Routes also include an OpenAPIDocument which describes
// the registered routes.
//
// The order of routes in this function is important! Gin saves a route
// along with all the middleware that will apply to the route when the
// Router.{GET,POST,etc} method is called.
func (s *Server) GenerateRoutes(promRegistry prometheus.Registerer) Routes {
	a := &API{server: s}
	router := gin.New()
	router.NoRoute(notFoundHandler)

	router.Use(gin.Recovery())
	router.GET("/healthz", healthHandler)

	router.Use(
		logging.Middleware(s.options.EnableLogSampling),
		TimeoutMiddleware(s.options.API.RequestTimeout),
	)

	api := router.Group("/",
		metricsMiddleware(promRegistry),
		DatabaseMiddleware(s.db), // must be after TimeoutMiddleware to time out db queries.
	)

	authn := api.Group("/", authenticatedMiddleware())

	get(a, authn, "/api/users/me", a.CurrentUser)

	get(a, authn, "/api/employees", a.ListEmployees)
	post(a, authn, "/api/employees", a.CreateEmployee)
	get(a, authn, "/api/employees/:id", a.GetEmployee)
	put(a, authn, "/api/employees/:id", a.UpdateEmployee)
	del(a, authn, "/api/employees/:id", a.DeleteEmployee)

	get(a, authn, "/api/departments", a.ListDepartments)
	post(a, authn, "/api/departments", a.CreateDepartment)
	get(a, authn, "/api/departments/:id", a.GetDepartment)
	put(a, authn, "/api/departments/:id", a.UpdateDepartment)
	del(a, authn, "/api/departments/:id", a.DeleteDepartment)

	post(a, authn, "/api/attendance/check-in", a.CheckIn)
	post(a, authn, "/api/attendance/check-out", a.CheckOut)
	get(a, authn, "/api/attendance", a.ListAttendance)
	post(a, authn, "/api/attendance", a.CreateAttendance)
	get(a, authn, "/api/attendance/:id", a.GetAttendance)
	put(a, authn, "/api/attendance/:id", a.UpdateAttendance)
	del(a, authn, "/api/attendance/:id", a.DeleteAttendance)

	get(a, authn, "/api/leaves", a.ListLeaves)
	post(a, authn, "/api/leaves", a.CreateLeave)
	get(a, authn, "/api/leaves/:id", a.GetLeave)
	put(a, authn, "/api/leaves/:id", a.ReviewLeave)
	del(a, authn, "/api/leaves/:id", a.DeleteLeave)

	get(a, authn, "/api/payrolls", a.ListPayrolls)
	post(a, authn, "/api/payrolls", a.CreatePayroll)
	get(a, authn, "/api/payrolls/:id", a.GetPayroll)
	put(a, authn, "/api/payrolls/:id", a.UpdatePayroll)
	del(a, authn, "/api/payrolls/:id", a.DeletePayroll)

	get(a, authn, "/api/reports/dashboard", a.DashboardReport)
	get(a, authn, "/api/reports/attendance", a.AttendanceReport)
	get(a, authn, "/api/reports/leaves", a.LeaveReport)
	get(a, authn, "/api/reports/payroll", a.PayrollReport)
	get(a, authn, "/api/reports/departments", a.DepartmentReport)
	authn.GET("/api/reports/payroll/export", a.exportPayrollHandler)

	// these endpoints do not require authentication
	noAuthn := api.Group("/", unauthenticatedMiddleware())
	post(a, noAuthn, "/api/signup", a.Signup)
	post(a, noAuthn, "/api/login", a.Login)
	get(a, noAuthn, "/api/version", a.Version)

	return Routes{Handler: router, OpenAPIDocument: a.openAPIDoc}
}

type ReqHandlerFunc[Req any] func(c *gin.Context, req *Req) error
type ReqResHandlerFunc[Req, Res any] func(c *gin.Context, req *Req) (Res, error)

func get[Req, Res any](a *API, r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	register(a, http.MethodGet, path.Join(r.BasePath(), route), handler)
	r.GET(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func post[Req, Res any](a *API, r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	register(a, http.MethodPost, path.Join(r.BasePath(), route), handler)
	r.POST(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusCreated, resp)
	})
}

func put[Req, Res any](a *API, r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	register(a, http.MethodPut, path.Join(r.BasePath(), route), handler)
	r.PUT(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func del[Req any](a *API, r *gin.RouterGroup, route string, handler ReqHandlerFunc[Req]) {
	registerDelete(a, http.MethodDelete, path.Join(r.BasePath(), route), handler)
	r.DELETE(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		if err := handler(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
	})
}

func bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if err := c.ShouldBindQuery(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
		}
	}

	if r, ok := req.(validate.Request); ok {
		if err := validate.Validate(r); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	gin.DisableBindValidation()
}

func healthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func notFoundHandler(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		sendAPIError(c, internal.ErrNotFound)
		return
	}
	c.Status(http.StatusNotFound)
}
