package controllers

import (
	"errors"

	"ecomm/entity"
	"ecomm/pkg/resp"
	"ecomm/services"
	"ecomm/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func authPayload(token string, user *entity.User) gin.H {
	return gin.H{
		"userToken": token,
		"userDetail": gin.H{
			"email": user.Email,
			"name":  user.Username,
			"role":  user.Role,
			"tier":  user.Tier,
		},
	}
}

// POST /api/Auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, authPayload(token, user))
}

// POST /api/Auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, authPayload(token, user))
}

// GET /api/Auth/getUserInfo
func (h *AuthController) GetUserInfo(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := h.Svc.GetUser(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id":    user.ID,
		"name":  user.Username,
		"email": user.Email,
		"role":  user.Role,
		"tier":  user.Tier,
	})
}
