package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/server/http/dto"
	"github.com/zestcart/zestcart/internal/server/http/middleware"
)

// CurrentAdminID extracts the authenticated operator identifier from context.
func CurrentAdminID(c *gin.Context) string {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	products := make([]dto.LineItemPayload, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, dto.LineItemPayload{
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: p.Quantity,
		})
	}

	resp := dto.OrderResponse{
		ID:        order.ID.String(),
		Name:      order.Name,
		Mobile:    order.Mobile,
		Amount:    order.TotalAmount,
		Products:  products,
		Status:    string(order.Status),
		Date:      order.Date,
		UpdatedAt: order.UpdatedAt,
	}
	if order.ProviderOrderID != nil {
		resp.ProviderOrderID = *order.ProviderOrderID
	}
	return resp
}
