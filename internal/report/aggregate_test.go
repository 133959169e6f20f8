package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buckets = []string{"대기", "진행", "완료", "홀딩"}

func TestAggregate_SpecScenario(t *testing.T) {
	rows := []Row{
		{Status: "대기", Team: "A", Assignee: "Kim", Date: "2024-03-01"},
		{Status: "진행", Team: "B", Assignee: "Lee", Date: "2024-07-01"},
	}

	s := Aggregate(rows, buckets)

	assert.Equal(t, []string{"대기", "진행"}, s.StatusCounts.Keys())
	assert.Equal(t, 1, s.StatusCounts.Get("대기"))
	assert.Equal(t, 1, s.StatusCounts.Get("진행"))

	require.Len(t, s.MonthlyStatus, 2)
	assert.Equal(t, "24/03", s.MonthlyStatus[0].Month)
	assert.Equal(t, "24/07", s.MonthlyStatus[1].Month)

	// 3월: 대기 1건, 나머지 0으로 채움
	march := s.MonthlyStatus[0].Counts
	assert.Equal(t, buckets, march.Keys())
	assert.Equal(t, 1, march.Get("대기"))
	assert.Equal(t, 0, march.Get("진행"))
	assert.Equal(t, 0, march.Get("완료"))
	assert.Equal(t, 0, march.Get("홀딩"))

	july := s.MonthlyStatus[1].Counts
	assert.Equal(t, 0, july.Get("대기"))
	assert.Equal(t, 1, july.Get("진행"))
}

func TestAggregate_SumInvariant(t *testing.T) {
	rows := []Row{
		{Status: "대기", Assignee: "Kim", Category: "해킹시도", Date: "2024-01-05"},
		{Status: "대기", Assignee: "", Category: "", Date: "2024-01-20"},
		{Status: "완료", Assignee: "Lee", Category: "악성코드", Date: "2023-12-31"},
		{Status: "취소", Assignee: "Lee", Category: "악성코드", Date: "broken"},
	}

	s := Aggregate(rows, buckets)

	assert.Equal(t, len(rows), s.StatusCounts.Sum())
	assert.Equal(t, len(rows), s.CategoryCounts.Sum())
	assert.Equal(t, len(rows), s.AssigneeCounts.Sum())
}

func TestAggregate_CoalescesEmptyBuckets(t *testing.T) {
	rows := []Row{
		{Status: "대기", Assignee: "", Category: ""},
		{Status: "대기", Assignee: "  ", Category: " "},
	}

	s := Aggregate(rows, buckets)

	assert.Equal(t, 2, s.CategoryCounts.Get(CategoryOther))
	assert.Equal(t, 2, s.AssigneeCounts.Get(Unassigned))
}

func TestAggregate_InsertionOrderIsFirstSeen(t *testing.T) {
	rows := []Row{
		{Status: "완료", Assignee: "Lee"},
		{Status: "대기", Assignee: "Kim"},
		{Status: "완료", Assignee: "Lee"},
		{Status: "홀딩", Assignee: "Park"},
	}

	s := Aggregate(rows, buckets)

	assert.Equal(t, []string{"완료", "대기", "홀딩"}, s.StatusCounts.Keys())
	assert.Equal(t, []string{"Lee", "Kim", "Park"}, s.AssigneeCounts.Keys())
}

func TestAggregate_MonthlySortedAcrossYears(t *testing.T) {
	rows := []Row{
		{Status: "대기", Date: "2024-01-15"},
		{Status: "대기", Date: "2023-11-02"},
		{Status: "진행", Date: "2023-02-08"},
		{Status: "대기", Date: "2024-01-31"},
	}

	s := Aggregate(rows, buckets)

	require.Len(t, s.MonthlyStatus, 3)
	assert.Equal(t, "23/02", s.MonthlyStatus[0].Month)
	assert.Equal(t, "23/11", s.MonthlyStatus[1].Month)
	assert.Equal(t, "24/01", s.MonthlyStatus[2].Month)
	assert.Equal(t, 2, s.MonthlyStatus[2].Counts.Get("대기"))
}

func TestAggregate_MonthlySkipsUnparsableDatesAndUnknownStatus(t *testing.T) {
	rows := []Row{
		{Status: "대기", Date: "없음"},
		{Status: "미정", Date: "2024-05-01"}, // 버킷에 없는 상태
		{Status: "진행", Date: "2024-05-01"},
	}

	s := Aggregate(rows, buckets)

	require.Len(t, s.MonthlyStatus, 1)
	assert.Equal(t, "24/05", s.MonthlyStatus[0].Month)
	assert.Equal(t, 1, s.MonthlyStatus[0].Counts.Get("진행"))
	// 상태 집계에는 전부 포함
	assert.Equal(t, 3, s.StatusCounts.Sum())
}

func TestCountMap_MarshalPreservesOrder(t *testing.T) {
	m := NewCountMap()
	m.Add("홀딩")
	m.Add("대기")
	m.Add("홀딩")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"홀딩":2,"대기":1}`, string(data))
}
