package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short text unchanged", "hello", "hello"},
		{"exactly fifteen", "123456789012345", "123456789012345"},
		{"long text cut", "a very long post about nothing", "a very long pos"},
		{"cyrillic counted in runes", "Тестовый пост про осень", "Тестовый пост п"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Text: tt.text}
			assert.Equal(t, tt.want, p.Label())
		})
	}
}

func TestPostsAllPagination(t *testing.T) {
	setupTestDB(t)
	author, err := UserCreate("pager", "", "", "", "secret-pass")
	require.NoError(t, err)
	for i := 0; i < 13; i++ {
		post := Post{AuthorID: author.ID, Text: fmt.Sprintf("post %d", i)}
		require.NoError(t, post.Create())
	}

	posts, page, err := PostsAll("")
	require.NoError(t, err)
	assert.Len(t, posts, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.Count)
	assert.True(t, page.HasNext)
	// Newest first
	assert.Equal(t, "post 12", posts[0].Text)

	rest, page2, err := PostsAll("2")
	require.NoError(t, err)
	assert.Len(t, rest, 3)
	assert.True(t, page2.HasPrev)
	assert.False(t, page2.HasNext)
	// The cut is stable: page 2 picks up right below page 1
	assert.Less(t, rest[0].ID, posts[len(posts)-1].ID)
}

func TestPostUpdateKeepsCreationTime(t *testing.T) {
	setupTestDB(t)
	author, err := UserCreate("editor", "", "", "", "secret-pass")
	require.NoError(t, err)
	post := Post{AuthorID: author.ID, Text: "original", CreatedAt: 1600000000}
	require.NoError(t, post.Create())

	require.NoError(t, post.Update("rewritten", nil, ""))

	reloaded, err := PostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", reloaded.Text)
	assert.Equal(t, int64(1600000000), reloaded.CreatedAt)
}

func TestPostDeleteRemovesComments(t *testing.T) {
	setupTestDB(t)
	author, err := UserCreate("deleter", "", "", "", "secret-pass")
	require.NoError(t, err)
	post := Post{AuthorID: author.ID, Text: "doomed"}
	require.NoError(t, post.Create())
	_, err = CommentCreate(post.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = CommentCreate(post.ID, author.ID, "second")
	require.NoError(t, err)

	require.NoError(t, post.Delete())

	_, err = PostByID(post.ID)
	assert.Error(t, err)
	comments, err := CommentsForPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostsByGroup(t *testing.T) {
	setupTestDB(t)
	author, err := UserCreate("grouper", "", "", "", "secret-pass")
	require.NoError(t, err)
	group := Group{Title: "Тестовая группа", Slug: "test-slug", Description: "about"}
	require.NoError(t, group.Create())
	other := Group{Title: "Другая группа", Slug: "other-slug"}
	require.NoError(t, other.Create())

	post := Post{AuthorID: author.ID, GroupID: &group.ID, Text: "Тестовый пост"}
	require.NoError(t, post.Create())
	loose := Post{AuthorID: author.ID, Text: "no group"}
	require.NoError(t, loose.Create())

	posts, _, err := PostsByGroup(group.ID, "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Тестовый пост", posts[0].Text)
	require.NotNil(t, posts[0].Group)
	assert.Equal(t, "test-slug", posts[0].Group.Slug)

	empty, _, err := PostsByGroup(other.ID, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
