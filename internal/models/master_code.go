package models

import "gorm.io/gorm"

// 마스터 코드: (그룹코드, 서브코드) → 표시명 변환 테이블.
// 상태/카테고리 코드는 모듈별 그룹으로 분리된다.
type MasterCode struct {
	gorm.Model
	GroupCode string `gorm:"size:50;not null;uniqueIndex:idx_group_sub" json:"groupCode"`
	SubCode   string `gorm:"size:50;not null;uniqueIndex:idx_group_sub" json:"subCode"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
}

// 모듈별 그룹코드
const (
	GroupIncidentStatus = "INCIDENT_STATUS"
	GroupIncidentType   = "INCIDENT_TYPE"
	GroupSoftwareStatus = "SOFTWARE_STATUS"
	GroupSoftwareClass  = "SOFTWARE_CLASS"
	GroupTaskStatus     = "TASK_STATUS"
	GroupVocStatus      = "VOC_STATUS"
	GroupVocType        = "VOC_TYPE"
	GroupSaleStatus     = "SALE_STATUS"
	GroupSaleType       = "SALE_TYPE"
)
