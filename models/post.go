package models

import (
	"pulse/db"
	"pulse/utils"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	AuthorID  uint64 `gorm:"index"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(300)"` // storage path, empty when no attachment
}

const labelLength = 15

// Label is the short form of the post text used in listings and logs.
func (p Post) Label() string {
	r := []rune(p.Text)
	if len(r) <= labelLength {
		return p.Text
	}
	return string(r[:labelLength])
}

func (p *Post) Create() error {
	return db.Instance.Create(p).Error
}

// Update rewrites the editable fields only; the creation timestamp survives.
func (p *Post) Update(text string, groupID *uint64, image string) error {
	return db.Instance.Model(p).Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
		"image":    image,
	}).Error
}

// Delete removes the post together with its comments.
func (p *Post) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// postsPage counts the scoped listing, computes the page window and fetches
// just that window, newest posts first.
func postsPage(pageParam string, scope func(*gorm.DB) *gorm.DB) ([]Post, utils.Page, error) {
	var total int64
	if err := scope(db.Instance.Model(&Post{})).Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}
	page := utils.Paginate(total, pageParam)
	var posts []Post
	err := scope(db.Instance.Preload("Author").Preload("Group")).
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&posts).Error
	return posts, page, err
}

func PostsAll(pageParam string) ([]Post, utils.Page, error) {
	return postsPage(pageParam, func(q *gorm.DB) *gorm.DB {
		return q
	})
}

func PostsByGroup(groupID uint64, pageParam string) ([]Post, utils.Page, error) {
	return postsPage(pageParam, func(q *gorm.DB) *gorm.DB {
		return q.Where("group_id = ?", groupID)
	})
}

func PostsByAuthor(authorID uint64, pageParam string) ([]Post, utils.Page, error) {
	return postsPage(pageParam, func(q *gorm.DB) *gorm.DB {
		return q.Where("author_id = ?", authorID)
	})
}

// PostsFollowed is the personalized feed: posts by every author the user follows.
func PostsFollowed(userID uint64, pageParam string) ([]Post, utils.Page, error) {
	return postsPage(pageParam, func(q *gorm.DB) *gorm.DB {
		return q.Where(
			"author_id IN (?)",
			db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID),
		)
	})
}
