package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/store"
	"shoppos/utils"
)

// Authenticator turns a login attempt into a user. The default is
// self-asserted role selection; a real credential check can replace it
// without touching the gating logic.
type Authenticator interface {
	Authenticate(name, role string) (models.User, error)
}

var ErrInvalidRole = errors.New("role must be admin or sales")

// SelfAsserted accepts whatever role the operator picked. A blank name
// becomes "User".
type SelfAsserted struct{}

func (SelfAsserted) Authenticate(name, role string) (models.User, error) {
	if !models.ValidRole(role) {
		return models.User{}, ErrInvalidRole
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "User"
	}
	return models.User{Name: name, Role: role}, nil
}

type AuthController struct {
	auth     Authenticator
	sessions *store.SessionStore
}

func NewAuthController(auth Authenticator, sessions *store.SessionStore) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

type loginInput struct {
	Name string `json:"name"`
	Role string `json:"role" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.auth.Authenticate(input.Name, input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(user.Name, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while generating token"})
		return
	}

	a.sessions.Set(user)
	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"name":  user.Name,
		"role":  user.Role,
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	a.sessions.Clear()
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me reports the current session, anonymous when none.
func (a *AuthController) Me(c *gin.Context) {
	user := a.sessions.Current()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"role": models.RoleAnonymous})
		return
	}
	c.JSON(http.StatusOK, user)
}
