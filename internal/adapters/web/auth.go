package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	userapp "github.com/8ubble8uddy/yatube-project/internal/core/user/service"
)

const (
	authCookie       = "auth_token"
	authCookieMaxAge = 24 * 60 * 60
)

// currentUserID resolves the session identity from the auth cookie, if any.
func (h *Handlers) currentUserID(c *gin.Context) (string, bool) {
	token, err := c.Cookie(authCookie)
	if err != nil || token == "" {
		return "", false
	}

	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}
	return claims.Subject, true
}

// authRequired gates write routes: anonymous visitors are sent to the login
// page with a next parameter pointing back.
func (h *Handlers) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.currentUserID(c)
		if !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/auth/login?next="+next)
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func (h *Handlers) signupForm(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", AuthFormData{})
}

func (h *Handlers) signup(c *gin.Context) {
	data := AuthFormData{
		Username:  c.PostForm("username"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Errors:    map[string]string{},
	}
	password := c.PostForm("password")

	if data.Username == "" {
		data.Errors["username"] = "Username is required"
	}
	if password == "" {
		data.Errors["password"] = "Password is required"
	}
	if len(data.Errors) > 0 {
		h.render(c, http.StatusOK, "signup.html", data)
		return
	}

	_, err := h.users.RegisterUser(c.Request.Context(), data.Username, data.FirstName, data.LastName, password)
	if err != nil {
		if errors.Is(err, userapp.ErrUsernameTaken) {
			data.Errors["username"] = "Username already taken"
			h.render(c, http.StatusOK, "signup.html", data)
			return
		}
		h.serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/auth/login")
}

func (h *Handlers) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", AuthFormData{Next: c.Query("next")})
}

func (h *Handlers) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")

	res, err := h.users.LoginUser(c.Request.Context(), username, password)
	if err != nil {
		data := AuthFormData{
			Username: username,
			Next:     next,
			Errors:   map[string]string{"password": "Invalid username or password"},
		}
		h.render(c, http.StatusOK, "login.html", data)
		return
	}

	c.SetCookie(authCookie, res.Token, authCookieMaxAge, "/", "", false, true)

	// Only relative targets; anything else is an open redirect.
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handlers) logout(c *gin.Context) {
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
