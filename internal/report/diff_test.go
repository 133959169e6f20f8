package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memo struct {
	Title    string
	Status   string
	Assignee string
	Note     string
}

var memoFields = []Field[memo]{
	{Name: "title", Label: "제목", Value: func(m memo) string { return m.Title }},
	{Name: "status", Label: "상태", Value: func(m memo) string { return m.Status }},
	{Name: "assignee", Label: "담당자", Value: func(m memo) string { return m.Assignee }},
}

func TestDiff_IdenticalRecordsYieldNothing(t *testing.T) {
	m := memo{Title: "점검", Status: "대기", Assignee: "Kim"}
	assert.Empty(t, Diff(m, m, memoFields))
}

func TestDiff_OneEntryPerChangedField(t *testing.T) {
	before := memo{Title: "점검", Status: "대기", Assignee: "Kim"}
	after := memo{Title: "정기점검", Status: "진행", Assignee: "Kim"}

	changes := Diff(before, after, memoFields)
	require.Len(t, changes, 2)

	assert.Equal(t, Change{Field: "title", Label: "제목", Before: "점검", After: "정기점검"}, changes[0])
	assert.Equal(t, Change{Field: "status", Label: "상태", Before: "대기", After: "진행"}, changes[1])
}

func TestDiff_OrderFollowsFieldTableNotChangeOrder(t *testing.T) {
	before := memo{Title: "a", Status: "대기", Assignee: "Kim"}
	after := memo{Title: "b", Status: "대기", Assignee: "Lee"}

	changes := Diff(before, after, memoFields)
	require.Len(t, changes, 2)
	assert.Equal(t, "title", changes[0].Field)
	assert.Equal(t, "assignee", changes[1].Field)
}

func TestDiff_FieldsOutsideTableAreIgnored(t *testing.T) {
	before := memo{Title: "점검", Note: "이전 메모"}
	after := memo{Title: "점검", Note: "바뀐 메모"}

	// Note 는 필드 테이블에 없으므로 이력 대상이 아니다
	assert.Empty(t, Diff(before, after, memoFields))
}

func TestDiff_WhitespaceOnlyChangeIsNotAChange(t *testing.T) {
	before := memo{Title: "점검"}
	after := memo{Title: "  점검  "}

	assert.Empty(t, Diff(before, after, memoFields))
}

func TestDiff_EmitsOriginalValuesNotNormalized(t *testing.T) {
	before := memo{Title: " 점검 "}
	after := memo{Title: "교체"}

	changes := Diff(before, after, memoFields)
	require.Len(t, changes, 1)
	assert.Equal(t, " 점검 ", changes[0].Before)
	assert.Equal(t, "교체", changes[0].After)
}

func TestStatusChange(t *testing.T) {
	ch := StatusChange("대기", "진행")
	assert.Equal(t, Change{Field: "status", Label: "상태", Before: "대기", After: "진행"}, ch)
}
