package models

import (
	"time"
)

// Organizer application review statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
)

// OrganizerApplication is a request to become a tournament organizer.
// Created on submission; mutated only by a review action.
type OrganizerApplication struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Reference           string     `json:"reference" gorm:"index"`
	FullName            string     `json:"fullName" gorm:"not null"`
	Email               string     `json:"email"`
	PokerExperience     string     `json:"pokerExperience"`
	PokerCredentials    string     `json:"pokerCredentials"`
	OrganizerExperience string     `json:"organizerExperience"`
	CollateralAmount    float64    `json:"collateralAmount"`
	Status              string     `json:"status" gorm:"default:'pending'"`
	SubmittedAt         time.Time  `json:"submittedAt" gorm:"autoCreateTime"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes         string     `json:"reviewNotes"`
}

// PlatformStats is the public dashboard aggregate.
type PlatformStats struct {
	TotalTournaments  int64   `json:"totalTournaments"`
	TotalInvestments  int64   `json:"totalInvestments"`
	TotalVolume       float64 `json:"totalVolume"`
	ActiveTournaments int64   `json:"activeTournaments"`
	PortfolioValue    float64 `json:"portfolioValue"`
	TotalROI          float64 `json:"totalROI"`
	LiquidityPool     float64 `json:"liquidityPool"`
	Volume24h         float64 `json:"volume24h"`
}

// AdminStats is the operator dashboard aggregate.
type AdminStats struct {
	Users       int64   `json:"users"`
	Tournaments int64   `json:"tournaments"`
	Investments int64   `json:"investments"`
	Organizers  int64   `json:"organizers"`
	TotalVolume float64 `json:"totalVolume"`
	Revenue     float64 `json:"revenue"`
	Status      string  `json:"status"`
}
