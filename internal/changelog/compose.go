package changelog

import (
	"opsboard/internal/models"
	"opsboard/internal/report"
)

// Actor — 이력에 남길 작업자 정보.
type Actor struct {
	Name string
	Team string
}

// Target — 이력 대상 기록. Location 은 문구에 들어가는 위치 표현(예: "관리대장").
type Target struct {
	Page        string // "incident" 등
	ModuleLabel string // "보안사고" 등
	Code        string
	Title       string
	Location    string
}

// EditEntries 는 변경 한 건당 이력 행 하나를 만든다.
// 변경이 없으면 nil — 같은 값으로 저장한 편집은 이력이 남지 않는다.
func EditEntries(t Target, changes []report.Change, actor Actor) []models.ChangeLog {
	if len(changes) == 0 {
		return nil
	}
	entries := make([]models.ChangeLog, 0, len(changes))
	for _, ch := range changes {
		entries = append(entries, models.ChangeLog{
			Page:        t.Page,
			RecordID:    t.Code,
			Title:       t.Title,
			Action:      models.ActionEdit,
			FieldLabel:  ch.Label,
			Before:      ch.Before,
			After:       ch.After,
			Description: EditMessage(t.ModuleLabel, t.Title, t.Code, t.Location, ch.Label, ch.Before, ch.After),
			ActorName:   actor.Name,
			ActorTeam:   actor.Team,
		})
	}
	return entries
}

// AddEntry — 생성 이벤트. differ 를 거치지 않는다.
func AddEntry(t Target, actor Actor) models.ChangeLog {
	return models.ChangeLog{
		Page:        t.Page,
		RecordID:    t.Code,
		Title:       t.Title,
		Action:      models.ActionAdd,
		Description: AddMessage(t.ModuleLabel, t.Title, t.Code, t.Location),
		ActorName:   actor.Name,
		ActorTeam:   actor.Team,
	}
}

// DeleteEntry — 삭제 이벤트.
func DeleteEntry(t Target, actor Actor) models.ChangeLog {
	return models.ChangeLog{
		Page:        t.Page,
		RecordID:    t.Code,
		Title:       t.Title,
		Action:      models.ActionDelete,
		Description: DeleteMessage(t.ModuleLabel, t.Title, t.Code, t.Location),
		ActorName:   actor.Name,
		ActorTeam:   actor.Team,
	}
}
