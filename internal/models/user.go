package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"size:50;not null" json:"name"` // 표시 이름, 기록 생성자/담당자 매칭에 사용
	Team         string   `gorm:"size:100" json:"team"`         // 소속 부서
	Position     string   `gorm:"size:50" json:"position"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}
