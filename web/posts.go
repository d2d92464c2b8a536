package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"pulse/auth"
	"pulse/forms"
	"pulse/models"
	"pulse/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func Index(c *gin.Context) {
	posts, page, err := models.PostsAll(c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Posts": posts,
		"Page":  page,
		"User":  auth.LoadSession(c).User(),
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		NotFound(c)
		return
	}
	posts, page, err := models.PostsByGroup(group.ID, c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"Group": group,
		"Posts": posts,
		"Page":  page,
		"User":  auth.LoadSession(c).User(),
	})
}

func Profile(c *gin.Context) {
	author, ok := authorFromPath(c)
	if !ok {
		return
	}
	posts, page, err := models.PostsByAuthor(author.ID, c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	user := auth.LoadSession(c).User()
	following := false
	if user.ID != 0 {
		following = models.IsFollowing(user.ID, author.ID)
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"Following": following,
		"User":      user,
	})
}

func PostDetail(c *gin.Context) {
	post, ok := postFromPath(c)
	if !ok {
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"Post":     post,
		"Comments": comments,
		"Form":     forms.CommentForm{},
		"User":     auth.LoadSession(c).User(),
	})
}

func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		renderPostForm(c, user, forms.PostForm{}, nil, 0)
		return
	}
	form := forms.PostForm{}
	_ = c.ShouldBind(&form)
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		renderPostForm(c, user, form, fieldErrors, 0)
		return
	}
	image, err := saveAttachment(c)
	if err != nil {
		serverError(c, err)
		return
	}
	post := models.Post{
		AuthorID: user.ID,
		GroupID:  form.GroupID(),
		Text:     form.Text,
		Image:    image,
	}
	if err := post.Create(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEdit(c *gin.Context, user *models.User) {
	post, ok := postFromPath(c)
	if !ok {
		return
	}
	detailPath := fmt.Sprintf("/posts/%d/", post.ID)
	// Someone else's post: send them to look at it instead
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, detailPath)
		return
	}
	if c.Request.Method == http.MethodGet {
		form := forms.PostForm{Text: post.Text}
		if post.GroupID != nil {
			form.Group = strconv.FormatUint(*post.GroupID, 10)
		}
		renderPostForm(c, user, form, nil, post.ID)
		return
	}
	form := forms.PostForm{}
	_ = c.ShouldBind(&form)
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		renderPostForm(c, user, form, fieldErrors, post.ID)
		return
	}
	image, err := saveAttachment(c)
	if err != nil {
		serverError(c, err)
		return
	}
	if image == "" {
		image = post.Image
	}
	if err := post.Update(form.Text, form.GroupID(), image); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailPath)
}

func renderPostForm(c *gin.Context, user *models.User, form forms.PostForm, fieldErrors map[string]string, postID uint64) {
	groups, err := models.GroupsAll()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "create_post.tmpl", gin.H{
		"Form":   form,
		"Errors": fieldErrors,
		"Groups": groups,
		"IsEdit": postID != 0,
		"PostID": postID,
		"User":   user,
	})
}

// saveAttachment stores the optional image part, if any, and returns its
// storage path. A request without an image part is not an error.
func saveAttachment(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	path := "posts/" + uuid.NewString() + filepath.Ext(file.Filename)
	if _, err := storage.Get().Save(path, src); err != nil {
		return "", err
	}
	return path, nil
}

func postFromPath(c *gin.Context) (models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return models.Post{}, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return models.Post{}, false
	}
	return post, true
}

func authorFromPath(c *gin.Context) (models.User, bool) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return models.User{}, false
	}
	return author, true
}
