package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/models"
)

func (a *API) ListLeaves(c *gin.Context, r *api.ListLeavesRequest) (*api.ListResponse[api.Leave], error) {
	leaves, p, err := access.ListLeaves(c, r)
	if err != nil {
		return nil, err
	}

	result := api.NewListResponse(leaves, models.PaginationToResponse(*p), func(leave models.Leave) api.Leave {
		return *leave.ToAPI()
	})

	return result, nil
}

func (a *API) GetLeave(c *gin.Context, r *api.GetLeaveRequest) (*api.Leave, error) {
	leave, err := access.GetLeave(c, r.ID)
	if err != nil {
		return nil, err
	}

	return leave.ToAPI(), nil
}

func (a *API) CreateLeave(c *gin.Context, r *api.CreateLeaveRequest) (*api.Leave, error) {
	leave, err := access.CreateLeave(c, r)
	if err != nil {
		return nil, err
	}

	return leave.ToAPI(), nil
}

func (a *API) ReviewLeave(c *gin.Context, r *api.ReviewLeaveRequest) (*api.Leave, error) {
	leave, err := access.ReviewLeave(c, r)
	if err != nil {
		return nil, err
	}

	return leave.ToAPI(), nil
}

func (a *API) DeleteLeave(c *gin.Context, r *api.GetLeaveRequest) error {
	return access.DeleteLeave(c, r.ID)
}
