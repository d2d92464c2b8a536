package web

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pulse/config"
	"pulse/db"
	"pulse/models"
	"pulse/storage"
	"pulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupServer builds a full engine on a fresh in-memory database.
func setupServer(t *testing.T) (*gin.Engine, *utils.PageCache) {
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	config.TEMPLATES_DIR = "../templates"
	config.MEDIA_DIR = t.TempDir()
	config.S3_BUCKET = ""
	db.Init()
	models.Init()
	storage.Init()
	cache := utils.NewPageCache(time.Minute)
	return NewEngine(cache), cache
}

// client replays session cookies between requests, like a browser would.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		replaced := false
		for i, existing := range cl.cookies {
			if existing.Name == c.Name {
				cl.cookies[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			cl.cookies = append(cl.cookies, c)
		}
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do("GET", path, nil)
}

func anonClient(t *testing.T, router *gin.Engine) *client {
	return &client{router: router}
}

// loginAs registers the user (if new) and logs the client in through the
// actual login route.
func loginAs(t *testing.T, router *gin.Engine, username string) *client {
	if _, err := models.UserByUsername(username); err != nil {
		_, err := models.UserCreate(username, "", "", username+"@example.com", "secret-pass")
		require.NoError(t, err)
	}
	cl := &client{router: router}
	w := cl.do("POST", "/auth/login/", url.Values{
		"username": {username},
		"password": {"secret-pass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	return cl
}

func postCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Post{}).Count(&count).Error)
	return count
}

func commentCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Comment{}).Count(&count).Error)
	return count
}
