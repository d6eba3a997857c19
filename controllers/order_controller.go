package controllers

import (
	"ecomm/pkg/resp"
	"ecomm/services"
	"ecomm/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /api/Order — admins see everything, everyone else their own.
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	orders, err := h.Svc.List(uid, role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders": orders,
		"userId": uid,
		"role":   role,
	})
}

// POST /api/Order
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	tier := utils.CurrentTier(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(uid, tier, &req)
	if err != nil {
		// every placement failure is user-visible and never retried
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, order)
}
