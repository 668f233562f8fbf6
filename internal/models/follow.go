package models

import "time"

// Follow is a user following a company. (FollowerID, CompanyID) is expected to be unique.
type Follow struct {
	ID         uint      `json:"id" bson:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" bson:"follower_id" gorm:"index;uniqueIndex:idx_follower_company"`
	CompanyID  uint      `json:"company_id" bson:"company_id" gorm:"index;uniqueIndex:idx_follower_company"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// FollowerView is one row of a company's follower list.
type FollowerView struct {
	ID             uint      `json:"id"`
	FollowerID     uint      `json:"follower_id"`
	CompanyID      uint      `json:"company_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	FollowingSince string    `json:"following_since"`
}

// FollowerStats summarises a company's follower list.
type FollowerStats struct {
	Total        int `json:"total"`
	NewThisMonth int `json:"new_this_month"`
}

// CompanyFollowers is a company's follower list with stats over all followers.
type CompanyFollowers struct {
	CompanyID uint           `json:"company_id"`
	Followers []FollowerView `json:"followers"`
	Stats     FollowerStats  `json:"stats"`
}
