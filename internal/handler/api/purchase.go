package api

import (
	"errors"
	"net/http"

	"pos-api/internal/domain/purchase"
	reqdto "pos-api/internal/handler/dto/request"
	resdto "pos-api/internal/handler/dto/response"
	"pos-api/internal/handler/httperr"
	"pos-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
	}
}

// @Summary Record a purchase
// @Description Creates a transaction with per-unit detail rows and returns the computed totals
// @Tags purchase
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /purchase [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseCommands.Execute(c.Request.Context(), req.ToDomain(), req.GetEmployeeCD())
	if err != nil {
		if errors.Is(err, purchase.ErrInvalidCartItem) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cart item",
			})
			return
		}
		// Persistence and unexpected failures alike: short message only,
		// nothing internal leaks to the caller.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record purchase", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}
