package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "pos-api/internal/handler/dto/response"
	"pos-api/internal/handler/httperr"
	"pos-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Look up a product by code
// @Description Returns the first product registered under the given code
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param code query string true "Product code"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products [get]
func (h *CatalogHandler) GetProductByCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "code query parameter is required",
		})
		return
	}

	product, err := h.catalogQueries.ProductByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(product))
}

// @Summary Look up a tax rate
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param tax_id path int true "Tax ID"
// @Success 200 {object} resdto.TaxResponse
// @Failure 404 {object} httperr.Response
// @Router /tax/{tax_id} [get]
func (h *CatalogHandler) GetTaxByID(c *gin.Context) {
	taxID, err := strconv.ParseInt(c.Param("tax_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "tax_id must be an integer",
		})
		return
	}

	tax, err := h.catalogQueries.TaxByID(c.Request.Context(), taxID)
	if err != nil {
		if errors.Is(err, queries.ErrTaxNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tax rate not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTaxView(tax))
}
