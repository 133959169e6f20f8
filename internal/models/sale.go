package models

import "gorm.io/gorm"

// 매출 보고 기록. 등록일은 생성 후 변경하지 않는다.
type Sale struct {
	gorm.Model
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"` // SAL-YYYY-NNNN

	Title      string `gorm:"size:255;not null" json:"title"` // 거래명
	StatusCode string `gorm:"size:50;not null" json:"statusCode"`
	StatusName string `gorm:"-" json:"statusName"`
	TypeCode   string `gorm:"size:50" json:"typeCode"` // 매출유형
	TypeName   string `gorm:"-" json:"typeName"`

	Customer string `gorm:"size:100" json:"customer"` // 거래처
	Amount   int64  `gorm:"not null;default:0" json:"amount"`

	Team     string `gorm:"size:100" json:"team"`
	Assignee string `gorm:"size:50" json:"assignee"`

	RegistrationDate string `gorm:"size:10" json:"registrationDate"` // 등록일
	CompletedDate    string `gorm:"size:10" json:"completedDate"`

	CreatedBy string `gorm:"size:50" json:"createdBy"`
}
