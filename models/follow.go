package models

import (
	"errors"

	"pulse/db"

	"gorm.io/gorm"
)

// Follow records that User wants Author's posts in their feed.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_user_author,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,priority:2,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor is idempotent: an existing pair and a duplicate-key race both
// end up as a no-op. Following yourself is silently ignored.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	follow := Follow{UserID: userID, AuthorID: authorID}
	err := db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// UnfollowAuthor removes the pair if present; absence is not an error.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
