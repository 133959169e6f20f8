package changelog

import (
	"testing"

	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var target = Target{
	Page:        "incident",
	ModuleLabel: "보안사고",
	Code:        "INC-2024-0001",
	Title:       "서버침해",
	Location:    "관리대장",
}

var who = Actor{Name: "이사원", Team: "정보보호팀"}

func TestEditEntries_EmptyChangesProduceNoEntries(t *testing.T) {
	// 같은 값으로 저장한 편집은 이력이 남지 않는다
	assert.Nil(t, EditEntries(target, nil, who))
	assert.Nil(t, EditEntries(target, []report.Change{}, who))
}

func TestEditEntries_OneEntryPerChange(t *testing.T) {
	changes := []report.Change{
		{Field: "status", Label: "상태", Before: "대기", After: "진행"},
		{Field: "assignee", Label: "담당자", Before: "Kim", After: "Lee"},
	}

	entries := EditEntries(target, changes, who)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "incident", first.Page)
	assert.Equal(t, "INC-2024-0001", first.RecordID) // 숫자 id 가 아니라 관리코드
	assert.Equal(t, models.ActionEdit, first.Action)
	assert.Equal(t, "상태", first.FieldLabel)
	assert.Equal(t, "대기", first.Before)
	assert.Equal(t, "진행", first.After)
	assert.Equal(t, "이사원", first.ActorName)
	assert.Equal(t, "정보보호팀", first.ActorTeam)
	assert.Equal(t,
		"보안사고 서버침해(INC-2024-0001) 관리대장 상태가 대기 → 진행 로 수정 되었습니다.",
		first.Description)

	assert.Equal(t, "담당자", entries[1].FieldLabel)
}

func TestAddEntry(t *testing.T) {
	entry := AddEntry(target, who)

	assert.Equal(t, models.ActionAdd, entry.Action)
	assert.Empty(t, entry.FieldLabel)
	assert.Empty(t, entry.Before)
	assert.Empty(t, entry.After)
	assert.Equal(t, "보안사고 서버침해(INC-2024-0001)이 관리대장에 추가 되었습니다.", entry.Description)
}

func TestDeleteEntry(t *testing.T) {
	entry := DeleteEntry(target, who)

	assert.Equal(t, models.ActionDelete, entry.Action)
	assert.Equal(t, "INC-2024-0001", entry.RecordID)
	assert.Equal(t, "보안사고 서버침해(INC-2024-0001)이 관리대장에서 삭제 되었습니다.", entry.Description)
}
