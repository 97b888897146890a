package models

import (
	"time"
)

// Tournament statuses. Transitions only ever move forward:
// upcoming → live → completed.
const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

var statusRank = map[string]int{
	StatusUpcoming:  0,
	StatusLive:      1,
	StatusCompleted: 2,
}

// ValidStatus reports whether s is one of the known tournament statuses.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a tournament may move from one status to
// another. Only strictly forward transitions are allowed.
func CanTransition(from, to string) bool {
	fr, ok1 := statusRank[from]
	tr, ok2 := statusRank[to]
	return ok1 && ok2 && tr > fr
}

// Tournament is a poker tournament open for investment.
type Tournament struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"not null"`
	Slug            string     `json:"slug" gorm:"index"`
	Description     string     `json:"description"`
	Organizer       string     `json:"organizer"`
	BuyIn           float64    `json:"buyIn"`
	PrizePool       float64    `json:"prizePool"`
	StartTime       time.Time  `json:"startTime" gorm:"not null"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	Status          string     `json:"status" gorm:"default:'upcoming'"`
	Participants    int        `json:"participants" gorm:"default:0"`
	MaxParticipants int        `json:"maxParticipants"`
	InvestmentPool  float64    `json:"investmentPool"`
	MinInvestment   float64    `json:"minInvestment" gorm:"default:50"`
	ExpectedROI     float64    `json:"expectedROI" gorm:"default:15"`
	RiskLevel       string     `json:"riskLevel" gorm:"default:'medium'"`
	OrganizerRating float64    `json:"organizerRating"`
	CollateralLock  float64    `json:"collateralLock"`
	MainPhotoURL    string     `json:"main_photo_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
