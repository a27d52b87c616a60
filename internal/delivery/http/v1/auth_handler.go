package v1

import (
	"net/http"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicUser := public.Group("/user")
	{
		publicUser.POST("/register", handler.Register)
		publicUser.POST("/login", handler.Login)
	}

	protectedUser := protected.Group("/user")
	{
		protectedUser.GET("/me", handler.Me)
	}
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user. Emails are unique.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        register  body      domain.UserRegistration  true  "Registration Details"
// @Success      200    {object}  response.Message
// @Failure      400    {object}  response.ErrorBody
// @Failure      422    {object}  response.ErrorBody
// @Router       /user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.UserRegistration
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUC.Register(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgUserRegistered)
}

// Login godoc
// @Summary      User Login
// @Description  Exchange email and password for a bearer access token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        login  body      domain.UserLogin  true  "Login Credentials"
// @Success      200    {object}  LoginResponse
// @Failure      400    {object}  response.ErrorBody
// @Router       /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.UserLogin
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, LoginResponse{Message: domain.MsgSuccess, AccessToken: token})
}

// Me godoc
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.ErrorBody
// @Router       /user/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.Get(string(domain.KeyUser))
	if !ok {
		response.Error(c, http.StatusUnauthorized, domain.MsgNotAuthenticated)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
