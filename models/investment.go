package models

import (
	"time"
)

// Investment is a stake a user takes in a tournament's investment pool.
// Tournament name, organizer and risk level are denormalized from the
// tournament at creation time so listings do not need a join.
type Investment struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id" gorm:"index;not null"`
	TournamentID    uint       `json:"tournament_id" gorm:"index;not null"`
	TournamentName  string     `json:"tournament"`
	Organizer       string     `json:"organizer"`
	Amount          float64    `json:"amount"`
	SharePercentage float64    `json:"sharePercentage"`
	Status          string     `json:"status" gorm:"default:'active'"`
	CurrentValue    float64    `json:"currentValue"`
	ROI             float64    `json:"roi"`
	ExpectedPayout  *time.Time `json:"expectedPayout,omitempty"`
	RiskLevel       string     `json:"riskLevel"`
	InvestmentDate  time.Time  `json:"investmentDate" gorm:"autoCreateTime"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
