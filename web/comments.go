package web

import (
	"fmt"
	"net/http"

	"pulse/forms"
	"pulse/models"

	"github.com/gin-gonic/gin"
)

// AddComment lands back on the post detail page whether or not the comment
// was good; a blank comment is simply dropped.
func AddComment(c *gin.Context, user *models.User) {
	post, ok := postFromPath(c)
	if !ok {
		return
	}
	form := forms.CommentForm{}
	_ = c.ShouldBind(&form)
	if fieldErrors := form.Validate(); len(fieldErrors) == 0 {
		if _, err := models.CommentCreate(post.ID, user.ID, form.Text); err != nil {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}
