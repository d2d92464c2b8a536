package auth

import (
	"net/http"
	"net/url"

	"pulse/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// HandlerFunc is only ever invoked with a logged-in user
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that sends anonymous visitors to the login page,
// carrying the requested path so they land back where they started.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
