package web

import (
	"net/http"
	"strings"

	"pulse/auth"
	"pulse/forms"
	"pulse/models"

	"github.com/gin-gonic/gin"
)

func Signup(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Form": forms.SignupForm{}})
		return
	}
	form := forms.SignupForm{}
	_ = c.ShouldBind(&form)
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Form": form, "Errors": fieldErrors})
		return
	}
	if _, err := models.UserCreate(form.Username, form.FirstName, form.LastName, form.Email, form.Password1); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

func Login(c *gin.Context) {
	next := c.Query("next")
	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Next": next})
		return
	}
	if next == "" {
		next = c.PostForm("next")
	}
	user, ok := models.UserLogin(c.PostForm("username"), c.PostForm("password"))
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Next":   next,
			"Errors": map[string]string{"username": "Wrong username or password"},
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	// Only continue to local paths
	if !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.HTML(http.StatusOK, "logged_out.tmpl", nil)
}
