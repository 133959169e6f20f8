package models

import "gorm.io/gorm"

// 보안사고 관리대장 기록
type Incident struct {
	gorm.Model
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"` // INC-YYYY-NNNN

	Title      string `gorm:"size:255;not null" json:"title"` // 사고명
	StatusCode string `gorm:"size:50;not null" json:"statusCode"`
	StatusName string `gorm:"-" json:"statusName"`
	TypeCode   string `gorm:"size:50" json:"typeCode"` // 사고유형
	TypeName   string `gorm:"-" json:"typeName"`

	Team     string `gorm:"size:100" json:"team"`
	Assignee string `gorm:"size:50" json:"assignee"`

	OccurredDate  string `gorm:"size:10" json:"occurredDate"` // 발생일 YYYY-MM-DD
	CompletedDate string `gorm:"size:10" json:"completedDate"`

	MainContent string `gorm:"type:text" json:"mainContent"` // 주요내용
	Cause       string `gorm:"type:text" json:"cause"`       // 원인

	CreatedBy string `gorm:"size:50" json:"createdBy"`
}
