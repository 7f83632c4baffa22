package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/storefront-service/internal/app/order/queries/list_orders"
)

// OrderHandler serves the order history endpoints.
type OrderHandler struct {
	listOrders *list_orders.Query
	getOrder   *get_order.Query
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	listOrders *list_orders.Query,
	getOrder *get_order.Query,
) *OrderHandler {
	return &OrderHandler{
		listOrders: listOrders,
		getOrder:   getOrder,
	}
}

// List serves GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	result, err := h.listOrders.Execute(c.Request.Context(), &list_orders.Request{
		Principal: currentPrincipal(c),
		Skip:      queryInt64(c, "skip", 0),
		Limit:     queryInt64(c, "limit", 0),
	})
	if err != nil {
		respondError(c, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Orders,
		"totalCount": result.TotalCount,
		"hasMore":    result.HasMore,
	})
}

// Get serves GET /api/orders/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.getOrder.Execute(c.Request.Context(), &get_order.Request{
		Principal: currentPrincipal(c),
		OrderID:   c.Param("orderId"),
	})
	if err != nil {
		respondError(c, "get order", err)
		return
	}

	c.JSON(http.StatusOK, order)
}
