package models

import "gorm.io/gorm"

// 고객의 소리(VOC) 접수 기록
type Voc struct {
	gorm.Model
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"` // VOC-YYYY-NNNN

	Title      string `gorm:"size:255;not null" json:"title"` // 제목
	StatusCode string `gorm:"size:50;not null" json:"statusCode"`
	StatusName string `gorm:"-" json:"statusName"`
	TypeCode   string `gorm:"size:50" json:"typeCode"` // VOC유형
	TypeName   string `gorm:"-" json:"typeName"`

	Customer string `gorm:"size:100" json:"customer"` // 고객사
	Team     string `gorm:"size:100" json:"team"`
	Assignee string `gorm:"size:50" json:"assignee"`

	ReceivedDate  string `gorm:"size:10" json:"receivedDate"` // 접수일
	CompletedDate string `gorm:"size:10" json:"completedDate"`

	Content string `gorm:"type:text" json:"content"` // 내용

	CreatedBy string `gorm:"size:50" json:"createdBy"`
}
