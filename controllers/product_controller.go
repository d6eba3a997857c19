package controllers

import (
	"errors"
	"strconv"

	"ecomm/entity"
	"ecomm/pkg/resp"
	"ecomm/repository"
	"ecomm/services"
	"ecomm/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

type searchQuery struct {
	Query      string   `form:"query"`
	CategoryID *uint    `form:"categoryId"`
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	Sort       int      `form:"sort"`
}

// GET /api/Products?query=&categoryId=&minPrice=&maxPrice=&sort=
func (h *ProductController) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	filter := repository.ProductFilter{
		Query:      q.Query,
		CategoryID: q.CategoryID,
		Sort:       q.Sort,
	}
	if q.MinPrice != nil {
		min := decimal.NewFromFloat(*q.MinPrice)
		filter.MinPrice = &min
	}
	if q.MaxPrice != nil {
		max := decimal.NewFromFloat(*q.MaxPrice)
		filter.MaxPrice = &max
	}

	results, err := h.Svc.Search(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(results) == 0 {
		resp.NotFound(c, "no products match the criteria")
		return
	}
	resp.OK(c, results)
}

// GET /api/Products/trending — premium perk (admins pass too).
func (h *ProductController) Trending(c *gin.Context) {
	if utils.CurrentTier(c) != entity.TierPremium && utils.CurrentRole(c) != entity.RoleAdmin {
		resp.Unauthorized(c, "trending deals are a premium perk")
		return
	}

	results, err := h.Svc.Trending()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(results) == 0 {
		resp.NotFound(c, "no products match the criteria")
		return
	}
	resp.OK(c, results)
}

// GET /api/Products/featured
func (h *ProductController) Featured(c *gin.Context) {
	results, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(results) == 0 {
		resp.NotFound(c, "no products match the criteria")
		return
	}
	resp.OK(c, results)
}

// GET /api/Products/:id
func (h *ProductController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	detail, err := h.Svc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /api/Products (admin)
func (h *ProductController) Add(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Add(&in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /api/Products/:id (admin)
func (h *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := h.Svc.Update(uint(id), &in); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// DELETE /api/Products/:id (admin)
func (h *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}

// GET /api/Products/categories
func (h *ProductController) Categories(c *gin.Context) {
	categories, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

type addCategoryReq struct {
	CategoryName string `json:"categoryName" binding:"required"`
	ImageURL     string `json:"imageUrl"`
}

// POST /api/Products/addcategory (admin)
func (h *ProductController) AddCategory(c *gin.Context) {
	var req addCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := h.Svc.AddCategory(req.CategoryName, req.ImageURL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// GET /api/Products/category/:id
func (h *ProductController) ByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	products, err := h.Svc.ByCategory(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /api/Products/addToWishlist/:productId
func (h *ProductController) AddToWishlist(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	wishlist, err := h.Svc.AddToWishlist(uid, uint(productID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, wishlist)
}

// GET /api/Products/wishlist
func (h *ProductController) Wishlist(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	wishlist, err := h.Svc.Wishlist(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, wishlist)
}

// DELETE /api/Products/wishlist/:productId
func (h *ProductController) RemoveFromWishlist(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	removed, err := h.Svc.RemoveFromWishlist(uid, uint(productID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !removed {
		resp.NotFound(c, "not in wishlist")
		return
	}
	resp.OK(c, gin.H{"message": "Removed from wishlist"})
}

type addReviewReq struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// POST /api/Products/reviews/:productId
func (h *ProductController) AddReview(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req addReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.AddReview(uid, uint(productID), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, review)
}

// GET /api/Products/reviews/:productId
func (h *ProductController) Reviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	reviews, err := h.Svc.Reviews(uint(productID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}
