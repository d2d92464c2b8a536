package models

import "pulse/db"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func CommentCreate(postID, authorID uint64, text string) (c Comment, err error) {
	c.PostID = postID
	c.AuthorID = authorID
	c.Text = text
	return c, db.Instance.Create(&c).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}
