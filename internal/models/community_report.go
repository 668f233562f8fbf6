package models

import "time"

// Report statuses. They are synthesised at read time for stored reports.
const (
	ReportStatusPending  = "pending"
	ReportStatusInReview = "in_review"
	ReportStatusResolved = "resolved"
)

// Report categories.
const (
	ReportDust      = "dust"
	ReportNoise     = "noise"
	ReportVibration = "vibration"
	ReportWater     = "water"
	ReportRisk      = "risk"
	ReportOther     = "other"
)

// CommunityReport is an incident reported by a community member.
type CommunityReport struct {
	ID          uint      `json:"id" bson:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" bson:"user_id" gorm:"index"`
	Category    string    `json:"category" bson:"category" gorm:"size:20;index"`
	Description string    `json:"description" bson:"description"`
	Zipcode     string    `json:"zipcode" bson:"zipcode" gorm:"size:10;index"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Location is a WGS84 coordinate.
type Location struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// MappedReport is a report placed on the map.
type MappedReport struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Zipcode     string    `json:"zipcode,omitempty"`
	UserID      uint      `json:"user_id,omitempty"`
}

// HeatmapPoint is a weighted location for density rendering.
type HeatmapPoint struct {
	Location
	Weight int `json:"weight"`
}

// CreateReportRequest defines the request body for reporting an incident
type CreateReportRequest struct {
	UserID      uint      `json:"user_id"`
	Type        string    `json:"type" validate:"required,oneof=dust noise vibration water risk other"`
	Description string    `json:"description" validate:"required,max=2000"`
	Location    *Location `json:"location" validate:"required"`
	Zipcode     string    `json:"zipcode,omitempty" validate:"omitempty,max=10"`
}
