package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

// AuthController handles login and logout. Tokens travel both in the response
// body and in an httpOnly cookie.
type AuthController struct {
	users     services.UserService
	tokens    *services.TokenService
	cookieTTL int
}

func NewAuthController(users services.UserService, tokens *services.TokenService, cookieTTLSeconds int) *AuthController {
	return &AuthController{users: users, tokens: tokens, cookieTTL: cookieTTLSeconds}
}

// Login verifies credentials and issues an access token. A wrong email and a
// wrong password produce the same response.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	user, svcErr := ac.users.GetByEmail(c.Request.Context(), req.Email)
	if svcErr != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	if !services.VerifyPassword(user.Password, req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := ac.tokens.IssueAccessToken(user.ID.Hex(), user.Role)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to issue token", nil)
		return
	}

	c.SetCookie(accessTokenCookie, token, ac.cookieTTL, "/", "", false, true)
	utils.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout clears the access token cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	utils.Success(c, http.StatusOK, "Logout successful", nil)
}
