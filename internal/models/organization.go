package models

import (
	"time"

	"gorm.io/datatypes"
)

// Organization mirrors the declared Supabase organizations table
// (migrations/0001_create_organizations.sql): every CSV-backed column plus a
// generated primary id and a creation timestamp. The load path never reads
// this table; only admin-sync writes it.
type Organization struct {
	ID                     uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CompanyName            string         `gorm:"column:company_name;not null" json:"company_name"`
	Industry               string         `gorm:"column:industry;not null" json:"industry"`
	Size                   int            `gorm:"column:size" json:"size"`
	Status                 string         `gorm:"column:status" json:"status"`
	FirstEngagement        datatypes.Date `gorm:"column:first_engagement" json:"first_engagement"`
	LastEngagement         datatypes.Date `gorm:"column:last_engagement" json:"last_engagement"`
	FinalEngagementSummary string         `gorm:"column:final_engagement_summary" json:"final_engagement_summary"`
	IconColor              string         `gorm:"column:icon_color" json:"icon_color"`
	CreatedAt              time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
