// controller/access_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ibac_errors "github.com/intentlock/ibac/errors"
	"github.com/intentlock/ibac/model"
	"github.com/intentlock/ibac/service"
	"github.com/intentlock/ibac/util"
	helper_util "github.com/intentlock/ibac/util/helper"
)

type AccessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) *AccessController {
	return &AccessController{
		accessService: accessService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	access := r.Group("/access")
	{
		access.POST("/evaluate", ac.EvaluateAccess)
	}
	auditGroup := r.Group("/audit")
	{
		auditGroup.GET("/records", ac.QueryAuditRecords)
	}
}

// EvaluateAccess endpoint
func (ac *AccessController) EvaluateAccess(c *gin.Context) {
	var req model.AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access request", err)
		return
	}

	result, err := ac.accessService.EvaluateAccess(c, req)
	if err != nil {
		switch {
		case errors.Is(err, ibac_errors.ErrInvalidRequestData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid access request", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate access request", ibac_errors.ErrInternalServer)
		}
		return
	}

	if result.Denied() {
		c.JSON(http.StatusForbidden, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// QueryAuditRecords endpoint
func (ac *AccessController) QueryAuditRecords(c *gin.Context) {
	from, err := helper_util.ParseTime(c.DefaultQuery("from", time.Time{}.Format(time.RFC3339)))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
		return
	}
	to, err := helper_util.ParseTime(c.DefaultQuery("to", time.Now().UTC().Format(time.RFC3339)))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
		return
	}

	records, err := ac.accessService.QueryAuditRecords(c, from, to, c.Query("subject_id"), c.Query("resource_id"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit records", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
