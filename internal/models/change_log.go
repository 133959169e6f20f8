package models

import "time"

// 변경 이력 액션 종류
const (
	ActionAdd    = "추가"
	ActionEdit   = "수정"
	ActionDelete = "삭제"
)

// ChangeLog — 전 모듈 공용 변경 이력. 한 번 기록되면 수정/삭제하지 않는다.
// RecordID 는 숫자 id 가 아니라 사람이 읽는 관리코드(code)를 담는다.
type ChangeLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Page       string `gorm:"size:50;not null;index" json:"page"` // "incident", "task" 등
	RecordID   string `gorm:"column:record_id;size:50;not null" json:"recordId"`
	Title      string `gorm:"size:255" json:"title"`
	Action     string `gorm:"size:20;not null" json:"action"` // 추가/수정/삭제
	FieldLabel string `gorm:"size:50" json:"fieldLabel"`      // 변경된 필드의 표시명 (수정일 때만)
	Before     string `gorm:"type:text" json:"before"`
	After      string `gorm:"type:text" json:"after"`

	Description string `gorm:"type:text" json:"description"`
	ActorName   string `gorm:"size:50" json:"actorName"`
	ActorTeam   string `gorm:"size:100" json:"actorTeam"`
}
