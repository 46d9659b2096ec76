package server

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/authn"
	"github.com/workforcehq/workforce/internal/server/data"
)

type API struct {
	server     *Server
	openAPIDoc openapi3.T
}

func (a *API) Login(c *gin.Context, r *api.LoginRequest) (*api.LoginResponse, error) {
	loginMethod := authn.NewPasswordCredentialAuthentication(r.Identifier, r.Password)

	user, token, expires, err := access.Login(c, loginMethod, a.server.options.SessionDuration)
	if err != nil {
		return nil, err
	}

	rCtx := getRequestContext(c)
	employee, err := data.GetEmployee(rCtx.DBTxn, data.ByID(user.EmployeeID))
	if err != nil {
		return nil, fmt.Errorf("employee for login: %w", err)
	}

	return &api.LoginResponse{
		Token:   token,
		Expires: api.Time(expires),
		User:    user.ToAPI(employee),
	}, nil
}

func (a *API) Signup(c *gin.Context, r *api.SignupRequest) (*api.SignupResponse, error) {
	if !a.server.options.EnableSignup {
		// behave as if the endpoint does not exist
		return nil, fmt.Errorf("%w: signup is disabled", internal.ErrNotFound)
	}

	user, employee, err := access.Signup(c, r)
	if err != nil {
		return nil, err
	}

	rCtx := getRequestContext(c)
	token, _, err := data.CreateSessionToken(rCtx.DBTxn, user, a.server.options.SessionDuration)
	if err != nil {
		return nil, fmt.Errorf("session for signup: %w", err)
	}

	return &api.SignupResponse{
		User:  user.ToAPI(employee),
		Token: token,
	}, nil
}

func (a *API) CurrentUser(c *gin.Context, _ *api.EmptyRequest) (*api.User, error) {
	user, employee, err := access.CurrentUser(c)
	if err != nil {
		return nil, err
	}

	result := user.ToAPI(employee)
	return &result, nil
}

func (a *API) Version(c *gin.Context, r *api.EmptyRequest) (*api.Version, error) {
	return &api.Version{Version: internal.FullVersion()}, nil
}
