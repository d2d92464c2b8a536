package web

import (
	"html/template"
	"strconv"
	"time"

	"pulse/auth"
	"pulse/config"
	"pulse/db"
	"pulse/utils"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

// NewEngine wires middleware, templates and the route table.
func NewEngine(pageCache *utils.PageCache) *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}

	router.SetFuncMap(template.FuncMap{
		"formatTime": func(ts int64) string {
			return time.Unix(ts, 0).Format("Jan 2, 2006 15:04")
		},
	})
	router.LoadHTMLGlob(config.TEMPLATES_DIR + "/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}

	authRouter := &auth.Router{Base: router}

	// The index is rendered with the session user's nav, so each user gets
	// their own cache entry (anonymous visitors all share the zero entry)
	pageCache.Key = func(c *gin.Context) string {
		return strconv.FormatUint(auth.LoadSession(c).UserID(), 10) + "|" + c.Request.URL.RequestURI()
	}
	router.GET("/", pageCache.Handler(Index))
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.POST("/profile/:username/follow/", ProfileFollow)
	authRouter.POST("/profile/:username/unfollow/", ProfileUnfollow)
	router.GET("/about/author/", AboutAuthor)
	router.GET("/about/tech/", AboutTech)
	router.GET("/auth/signup/", Signup)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/login/", Login)
	router.POST("/auth/login/", Login)
	router.GET("/auth/logout/", Logout)
	router.GET("/media/*path", Media)
	router.NoRoute(NotFound)

	return router
}
