package handlers

import (
	"context"
	"log"
	"net/http"

	"quizzle-service/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Identity is the slice of the OIDC flow the handler needs: build the
// provider redirect for one attempt, then trade the callback code for
// verified claims.
type Identity interface {
	AuthCodeURL(state, nonce string) string
	Exchange(ctx context.Context, code, nonce string) (*auth.Claims, error)
}

type AuthHandler struct {
	Identity Identity
	Frontend string
}

func NewAuthHandler(identity Identity, frontend string) *AuthHandler {
	return &AuthHandler{Identity: identity, Frontend: frontend}
}

// Login starts an attempt: a fresh state and nonce are generated per
// attempt and held in this session only, then the caller is redirected
// to the provider.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := auth.RandomToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate state"})
		return
	}
	nonce, err := auth.RandomToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate nonce"})
		return
	}
	sess := sessions.Default(c)
	sess.Set("state", state)
	sess.Set("nonce", nonce)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusFound, h.Identity.AuthCodeURL(state, nonce))
}

// Authorize finishes the attempt: the state must match the one stored
// at login, the code is exchanged and the ID token verified against
// the attempt's nonce, then the claims replace the pending state.
func (h *AuthHandler) Authorize(c *gin.Context) {
	sess := sessions.Default(c)
	state, _ := sess.Get("state").(string)
	if state == "" || state != c.Query("state") {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid state"})
		return
	}
	nonce, _ := sess.Get("nonce").(string)
	claims, err := h.Identity.Exchange(c.Request.Context(), c.Query("code"), nonce)
	if err != nil {
		log.Printf("Token exchange error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to exchange token"})
		return
	}
	sess.Delete("state")
	sess.Delete("nonce")
	sess.Set("user", *claims)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusFound, h.Frontend)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusFound, h.Frontend)
}

func (h *AuthHandler) UserInfo(c *gin.Context) {
	claims, ok := sessions.Default(c).Get("user").(auth.Claims)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no user logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": claims})
}
