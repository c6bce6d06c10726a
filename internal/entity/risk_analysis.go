package entity

import (
	"time"

	"gorm.io/datatypes"
)

// RiskAnalysis is a scored assessment of a user's holdings. RiskScore is
// always within [0,100]. GeneratorMeta keeps the raw prompt/response pair
// when the analysis came from the text generator, for later audit.
type RiskAnalysis struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	RiskScore     float64        `gorm:"not null" json:"risk_score"`
	Explanation   string         `gorm:"size:500;not null" json:"explanation"`
	GeneratorMeta datatypes.JSON `json:"generator_meta,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the RiskAnalysis model.
func (RiskAnalysis) TableName() string {
	return "risk_analyses"
}
