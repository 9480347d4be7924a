package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
)

type AuthHandler struct {
	Credentials *auth.CredentialStore
	Sessions    *auth.SessionService
	Users       *services.UserService
}

func NewAuthHandler(creds *auth.CredentialStore, sessions *auth.SessionService, users *services.UserService) *AuthHandler {
	return &AuthHandler{Credentials: creds, Sessions: sessions, Users: users}
}

// Register is POST /register. The account is created but not logged in;
// the client follows up with /login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(c, fmt.Errorf("%w: passwords do not match", services.ErrValidation))
		return
	}
	id, err := h.Credentials.Register(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username})
}

// Login is POST /login. On success the session token goes out as an
// HttpOnly cookie; the body carries the user id for the client's benefit.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	userID, err := h.Credentials.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	session, err := h.Sessions.Create(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(auth.CookieName, session.Token, int(h.Sessions.TTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"id": userID})
}

// Logout is GET /logout. The cookie is cleared before the server-side
// session is destroyed, so the client is logged out even when the
// datastore hiccups.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(auth.CookieName)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	if err == nil {
		if err := h.Sessions.Destroy(token); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// DeleteAccount is POST /account/delete: removes the caller's user row and
// everything cascading from it, sessions included.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.Users.Delete(auth.CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "account deleted"})
}

// Root is GET /: send the client to the dashboard when the cookie resolves,
// to login otherwise.
func (h *AuthHandler) Root(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil {
		if _, err := h.Sessions.Resolve(token); err == nil {
			c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusTemporaryRedirect, "/login")
}
