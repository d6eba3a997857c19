package controllers

import (
	"errors"
	"strconv"

	"ecomm/pkg/resp"
	"ecomm/services"
	"ecomm/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/Cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, cartPrice, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"length":    len(lines),
		"data":      lines,
		"cartPrice": cartPrice,
	})
}

type addToCartReq struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// POST /api/Cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity <= 0 {
		resp.BadRequest(c, "quantity must be greater than 0")
		return
	}

	if err := h.Svc.Add(uid, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "Added to cart"})
}

// PUT /api/Cart/:productId?quantity=
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	qty, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		resp.BadRequest(c, "invalid quantity")
		return
	}

	if err := h.Svc.UpdateQuantity(uid, uint(productID), qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Quantity updated"})
}

// DELETE /api/Cart/:productId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Remove(uid, uint(productID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Removed from cart"})
}

// DELETE /api/Cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart cleared"})
}
