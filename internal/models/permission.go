package models

import "gorm.io/gorm"

// 역할 × 페이지별 권한. 행이 없으면 전부 불허.
type Permission struct {
	gorm.Model
	Role UserRole `gorm:"type:varchar(20);not null;uniqueIndex:idx_role_page" json:"role"`
	Page string   `gorm:"size:50;not null;uniqueIndex:idx_role_page" json:"page"`

	CanViewCategory bool `json:"canViewCategory"`
	CanReadData     bool `json:"canReadData"`
	CanCreateData   bool `json:"canCreateData"`
	CanEditOwn      bool `json:"canEditOwn"`
	CanEditOthers   bool `json:"canEditOthers"`
}
