package models

import "pulse/db"

// Group is a named collection that posts may be filed under. Groups are
// reference data: they are created by an operator, not through the web UI.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func (g *Group) Create() error {
	return db.Instance.Create(g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func GroupsAll() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}
