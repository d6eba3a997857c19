package controllers

import (
	"ecomm/pkg/resp"
	"ecomm/services"
	"ecomm/utils"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct{ Svc *services.SubscriptionService }

func NewSubscriptionController(s *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Svc: s}
}

type subscribeReq struct {
	Tier string `json:"tier" binding:"required"`
}

// POST /api/Subscriptions
func (h *SubscriptionController) Subscribe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sub, err := h.Svc.Subscribe(uid, req.Tier)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, sub)
}

// DELETE /api/Subscriptions
func (h *SubscriptionController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	ok, err := h.Svc.Cancel(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "no active subscription found")
		return
	}
	resp.OK(c, gin.H{"message": "Subscription cancelled"})
}

// GET /api/Subscriptions
func (h *SubscriptionController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	sub, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if sub == nil {
		resp.NotFound(c, "no subscription found")
		return
	}
	resp.OK(c, sub)
}
