package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	"github.com/queueworks/queue-booking-api/internal/models"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

type BranchHandler struct {
	repo     domain.Repository
	deleteUC *usecase.DeleteBranch
}

func NewBranchHandler(repo domain.Repository, deleteUC *usecase.DeleteBranch) *BranchHandler {
	return &BranchHandler{repo: repo, deleteUC: deleteUC}
}

type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
	Active  *bool  `json:"is_active"`
}

// List shows every branch to admins and only active ones to customers.
func (h *BranchHandler) List(c *gin.Context) {
	activeOnly := c.GetString(middleware.ContextUserRole) != models.RoleAdmin

	branches, err := h.repo.ListBranches(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.Internal(c, "branch_list_failed", "could not load branches")
		return
	}

	httpresp.List(c, branches)
}

func (h *BranchHandler) Get(c *gin.Context) {
	branch, err := h.repo.GetBranch(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "the requested resource does not exist")
		return
	}
	httpresp.OK(c, branch)
}

func (h *BranchHandler) Create(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	branch := models.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  true,
	}
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := h.repo.CreateBranch(c.Request.Context(), &branch); err != nil {
		httperr.Internal(c, "branch_create_failed", "could not create the branch")
		return
	}

	httpresp.Created(c, branch)
}

func (h *BranchHandler) Update(c *gin.Context) {
	branch, err := h.repo.GetBranch(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "branch_not_found", "the requested resource does not exist")
		return
	}

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	branch.Name = req.Name
	branch.Address = req.Address
	branch.Phone = req.Phone
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := h.repo.UpdateBranch(c.Request.Context(), branch); err != nil {
		httperr.Internal(c, "branch_update_failed", "could not update the branch")
		return
	}

	httpresp.OK(c, branch)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
