package web

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"pulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	router, _ := setupServer(t)
	author, err := models.UserCreate("author", "", "", "", "secret-pass")
	require.NoError(t, err)
	post := models.Post{AuthorID: author.ID, Text: "discuss"}
	require.NoError(t, post.Create())

	cl := loginAs(t, router, "commenter")
	detail := fmt.Sprintf("/posts/%d/", post.ID)
	w := cl.do("POST", detail+"comment/", url.Values{"text": {"well said"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detail, w.Header().Get("Location"))

	comments, err := models.CommentsForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "well said", comments[0].Text)
	assert.Equal(t, "commenter", comments[0].Author.Username)
}

func TestAddCommentByAnonymous(t *testing.T) {
	router, _ := setupServer(t)
	author, err := models.UserCreate("author", "", "", "", "secret-pass")
	require.NoError(t, err)
	post := models.Post{AuthorID: author.ID, Text: "discuss"}
	require.NoError(t, post.Create())

	cl := anonClient(t, router)
	w := cl.do("POST", fmt.Sprintf("/posts/%d/comment/", post.ID), url.Values{"text": {"drive by"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login/?next=")
	assert.Equal(t, int64(0), commentCount(t))
}

func TestBlankCommentIsDropped(t *testing.T) {
	router, _ := setupServer(t)
	author, err := models.UserCreate("author", "", "", "", "secret-pass")
	require.NoError(t, err)
	post := models.Post{AuthorID: author.ID, Text: "discuss"}
	require.NoError(t, post.Create())

	cl := loginAs(t, router, "commenter")
	detail := fmt.Sprintf("/posts/%d/", post.ID)
	w := cl.do("POST", detail+"comment/", url.Values{"text": {"   "}})
	// Still lands on the detail page, nothing saved
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detail, w.Header().Get("Location"))
	assert.Equal(t, int64(0), commentCount(t))
}
