package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
	"github.com/queueworks/queue-booking-api/internal/middleware"
	usecase "github.com/queueworks/queue-booking-api/internal/usecase/booking"
)

type UserHandler struct {
	repo     domain.Repository
	deleteUC *usecase.DeleteUser
}

func NewUserHandler(repo domain.Repository, deleteUC *usecase.DeleteUser) *UserHandler {
	return &UserHandler{repo: repo, deleteUC: deleteUC}
}

// List returns customer accounts, optionally narrowed by a name/email search.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Internal(c, "user_list_failed", "could not load customers")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
