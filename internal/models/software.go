package models

import "gorm.io/gorm"

// 소프트웨어 자산 기록
type Software struct {
	gorm.Model
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"` // SW-YYYY-NNNN

	Title      string `gorm:"size:255;not null" json:"title"` // 소프트웨어명
	StatusCode string `gorm:"size:50;not null" json:"statusCode"`
	StatusName string `gorm:"-" json:"statusName"`
	ClassCode  string `gorm:"size:50" json:"classCode"` // 자산분류
	ClassName  string `gorm:"-" json:"className"`

	Team     string `gorm:"size:100" json:"team"`
	Assignee string `gorm:"size:50" json:"assignee"`

	Vendor  string `gorm:"size:100" json:"vendor"` // 공급업체
	Version string `gorm:"size:50" json:"version"`

	PurchaseDate string `gorm:"size:10" json:"purchaseDate"` // 구매일
	ExpiryDate   string `gorm:"size:10" json:"expiryDate"`   // 만료일

	Remark string `gorm:"type:text" json:"remark"`

	CreatedBy string `gorm:"size:50" json:"createdBy"`
}
