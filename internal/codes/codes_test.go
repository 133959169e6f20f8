package codes

import (
	"testing"

	"opsboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCache() {
	load([]models.MasterCode{
		{GroupCode: models.GroupIncidentStatus, SubCode: "SUB001", Name: "대기", SortOrder: 1},
		{GroupCode: models.GroupIncidentStatus, SubCode: "SUB002", Name: "진행", SortOrder: 2},
		{GroupCode: models.GroupIncidentStatus, SubCode: "SUB003", Name: "완료", SortOrder: 3},
		{GroupCode: models.GroupIncidentType, SubCode: "SUB001", Name: "해킹시도", SortOrder: 1},
	})
}

func TestName(t *testing.T) {
	seedCache()

	assert.Equal(t, "대기", Name(models.GroupIncidentStatus, "SUB001"))
	assert.Equal(t, "진행", Name(models.GroupIncidentStatus, "SUB002"))

	// 같은 서브코드라도 그룹이 다르면 다른 이름
	assert.Equal(t, "해킹시도", Name(models.GroupIncidentType, "SUB001"))
}

func TestName_UnknownCodePassesThrough(t *testing.T) {
	seedCache()

	// 변환 안 된 코드는 그대로 노출 — 칸반에서는 어느 버킷에도 안 걸린다
	assert.Equal(t, "SUB999", Name(models.GroupIncidentStatus, "SUB999"))
	assert.Equal(t, "SUB001", Name("NO_SUCH_GROUP", "SUB001"))
}

func TestSub_ReverseLookup(t *testing.T) {
	seedCache()

	sub, ok := Sub(models.GroupIncidentStatus, "진행")
	require.True(t, ok)
	assert.Equal(t, "SUB002", sub)

	_, ok = Sub(models.GroupIncidentStatus, "취소")
	assert.False(t, ok)
}

func TestGroup_ReturnsSeededOrder(t *testing.T) {
	seedCache()

	list := Group(models.GroupIncidentStatus)
	require.Len(t, list, 3)
	assert.Equal(t, "대기", list[0].Name)
	assert.Equal(t, "진행", list[1].Name)
	assert.Equal(t, "완료", list[2].Name)

	assert.Nil(t, Group("NO_SUCH_GROUP"))
}
