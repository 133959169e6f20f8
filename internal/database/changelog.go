package database

import (
	"log"

	"opsboard/internal/models"
)

// CreateChangeLogs 는 변경 이력을 append 한다. 실패해도 호출한 쪽의
// 기록 저장은 이미 끝난 뒤라 되돌리지 않고, 로그만 남기고 넘어간다.
func CreateChangeLogs(entries []models.ChangeLog) {
	if DB == nil || len(entries) == 0 {
		return
	}
	if err := DB.Create(&entries).Error; err != nil {
		log.Printf("failed to write change log (page=%s record=%s): %v",
			entries[0].Page, entries[0].RecordID, err)
	}
}

// CreateChangeLog — 단건 기록용 helper.
func CreateChangeLog(entry models.ChangeLog) {
	CreateChangeLogs([]models.ChangeLog{entry})
}
