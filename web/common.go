package web

import (
	"net/http"
	"strings"

	"pulse/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Path": c.Request.URL.Path})
}

func serverError(c *gin.Context, err error) {
	logrus.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	c.String(http.StatusInternalServerError, "Something went wrong")
}

// Media serves stored image attachments
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		NotFound(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
