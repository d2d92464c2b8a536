package web

import (
	"net/http"

	"pulse/auth"

	"github.com/gin-gonic/gin"
)

// Static pages about the project and its author.

func AboutAuthor(c *gin.Context) {
	c.HTML(http.StatusOK, "about_author.tmpl", gin.H{
		"User": auth.LoadSession(c).User(),
	})
}

func AboutTech(c *gin.Context) {
	c.HTML(http.StatusOK, "about_tech.tmpl", gin.H{
		"User": auth.LoadSession(c).User(),
	})
}
