package models

import "gorm.io/gorm"

// 업무 관리 기록. 카테고리 집계는 부서(자유 텍스트) 기준.
type Task struct {
	gorm.Model
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"` // TSK-YYYY-NNNN

	Title      string `gorm:"size:255;not null" json:"title"` // 업무명
	StatusCode string `gorm:"size:50;not null" json:"statusCode"`
	StatusName string `gorm:"-" json:"statusName"`

	Department string `gorm:"size:100" json:"department"` // 수행 부서
	Team       string `gorm:"size:100" json:"team"`
	Assignee   string `gorm:"size:50" json:"assignee"`

	StartDate     string `gorm:"size:10" json:"startDate"` // 시작일
	CompletedDate string `gorm:"size:10" json:"completedDate"`

	WorkContent string `gorm:"type:text" json:"workContent"` // 업무내용

	CreatedBy string `gorm:"size:50" json:"createdBy"`
}
