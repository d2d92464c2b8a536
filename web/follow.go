package web

import (
	"net/http"

	"pulse/models"

	"github.com/gin-gonic/gin"
)

func FollowIndex(c *gin.Context, user *models.User) {
	posts, page, err := models.PostsFollowed(user.ID, c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"Posts": posts,
		"Page":  page,
		"User":  user,
	})
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author, ok := authorFromPath(c)
	if !ok {
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, ok := authorFromPath(c)
	if !ok {
		return
	}
	if err := models.UnfollowAuthor(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
