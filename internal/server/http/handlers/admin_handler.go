package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zestcart/zestcart/internal/server/http/dto"
	"github.com/zestcart/zestcart/internal/server/http/middleware"
)

// AdminHandler processes operator credential validation.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Validate handles POST /validate-admin. The endpoint reports a
// boolean verdict and never discloses why validation failed.
func (h *AdminHandler) Validate(c *gin.Context) {
	var req dto.ValidateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.ValidateAdminResponse{IsValid: false})
		return
	}

	valid, token := h.facade.ValidateAdmin(c.Request.Context(), req.AdminID, req.Password)
	if valid {
		middleware.SetOperatorToken(c, token)
	}

	c.JSON(http.StatusOK, dto.ValidateAdminResponse{IsValid: valid})
}
