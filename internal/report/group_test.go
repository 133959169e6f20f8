package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	Code   string
	Status string
}

func cardStatus(c card) string { return c.Status }

func TestGroupByStatus_Partition(t *testing.T) {
	cards := []card{
		{"INC-2024-0001", "대기"},
		{"INC-2024-0002", "진행"},
		{"INC-2024-0003", "대기"},
		{"INC-2024-0004", "완료"},
	}

	grouped := GroupByStatus(cards, cardStatus, buckets)

	require.Len(t, grouped, len(buckets))
	assert.Len(t, grouped["대기"], 2)
	assert.Len(t, grouped["진행"], 1)
	assert.Len(t, grouped["완료"], 1)
	assert.Empty(t, grouped["홀딩"])

	// 각 레코드는 정확히 한 버킷에만 존재
	total := 0
	for _, b := range buckets {
		total += len(grouped[b])
	}
	assert.Equal(t, len(cards), total)
}

func TestGroupByStatus_UnknownStatusAppearsNowhere(t *testing.T) {
	cards := []card{
		{"INC-2024-0001", "대기"},
		{"INC-2024-0002", "취소"}, // 버킷 키가 아님
		{"INC-2024-0003", ""},
	}

	grouped := GroupByStatus(cards, cardStatus, buckets)

	total := 0
	for _, recs := range grouped {
		total += len(recs)
	}
	assert.Equal(t, 1, total)
}

func TestGroupByStatus_AllBucketsPresentWhenEmptyInput(t *testing.T) {
	grouped := GroupByStatus(nil, cardStatus, buckets)

	require.Len(t, grouped, len(buckets))
	for _, b := range buckets {
		recs, ok := grouped[b]
		assert.True(t, ok)
		assert.Empty(t, recs)
	}
}

func TestGroupByStatus_PreservesInputOrderWithinBucket(t *testing.T) {
	cards := []card{
		{"INC-2024-0003", "대기"},
		{"INC-2024-0001", "대기"},
		{"INC-2024-0002", "대기"},
	}

	grouped := GroupByStatus(cards, cardStatus, buckets)

	require.Len(t, grouped["대기"], 3)
	assert.Equal(t, "INC-2024-0003", grouped["대기"][0].Code)
	assert.Equal(t, "INC-2024-0001", grouped["대기"][1].Code)
	assert.Equal(t, "INC-2024-0002", grouped["대기"][2].Code)
}
