package models

import (
	"time"
)

// User is an account on the platform. Identity comes in two flavours:
// username/email/password registration, or a connected wallet address.
// Both end up as the same row; the session token always carries the numeric ID.
//
// Uniqueness of username and email is enforced by an explicit pre-read before
// insert, not by a database constraint — the store is not assumed to enforce
// it atomically. The narrow race window this leaves is a documented limitation.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"index;not null"`
	Email    string `json:"email" gorm:"index"`
	// PasswordDigest is never serialized to clients.
	PasswordDigest string     `json:"-" gorm:"column:password_digest"`
	WalletAddress  string     `json:"wallet_address,omitempty" gorm:"index"`
	PortfolioValue float64    `json:"portfolioValue"`
	TotalInvested  float64    `json:"totalInvested"`
	TotalROI       float64    `json:"totalROI"`
	IsOrganizer    bool       `json:"isOrganizer" gorm:"default:false"`
	JoinedDate     time.Time  `json:"joinedDate" gorm:"autoCreateTime"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}
