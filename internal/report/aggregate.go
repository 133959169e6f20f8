package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Summary — 대시보드 차트용 집계 결과.
type Summary struct {
	StatusCounts   *CountMap       `json:"statusCounts"`
	CategoryCounts *CountMap       `json:"categoryCounts"`
	AssigneeCounts *CountMap       `json:"assigneeCounts"`
	MonthlyStatus  []MonthlyStatus `json:"monthlyStatusCounts"`
}

// MonthlyStatus — 한 달치 상태별 건수. 고정 버킷 전부 0 채움.
type MonthlyStatus struct {
	Month  string    `json:"month"` // "24/03" (두 자리 연도/월)
	Counts *CountMap `json:"counts"`
}

// Aggregate 는 필터링된 행에서 상태/카테고리/담당자/월별 집계를 한 번에 계산한다.
// 상태·카테고리·담당자 세 차원은 각각 합이 입력 건수와 일치한다.
// 월별 집계는 날짜가 파싱되는 행만 포함하고, statusBuckets 에 없는 상태는 세지 않는다.
func Aggregate(rows []Row, statusBuckets []string) Summary {
	s := Summary{
		StatusCounts:   NewCountMap(),
		CategoryCounts: NewCountMap(),
		AssigneeCounts: NewCountMap(),
	}

	bucketSet := make(map[string]struct{}, len(statusBuckets))
	for _, b := range statusBuckets {
		bucketSet[b] = struct{}{}
	}

	type ym struct{ year, month int }
	monthly := make(map[ym]*CountMap)

	for _, r := range rows {
		s.StatusCounts.Add(r.Status)

		category := strings.TrimSpace(r.Category)
		if category == "" {
			category = CategoryOther
		}
		s.CategoryCounts.Add(category)

		assignee := strings.TrimSpace(r.Assignee)
		if assignee == "" {
			assignee = Unassigned
		}
		s.AssigneeCounts.Add(assignee)

		t, err := time.Parse(dateLayout, strings.TrimSpace(r.Date))
		if err != nil {
			continue
		}
		if _, ok := bucketSet[r.Status]; !ok {
			continue
		}
		key := ym{t.Year(), int(t.Month())}
		if monthly[key] == nil {
			monthly[key] = NewCountMap(statusBuckets...)
		}
		monthly[key].Add(r.Status)
	}

	keys := make([]ym, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	s.MonthlyStatus = make([]MonthlyStatus, 0, len(keys))
	for _, k := range keys {
		s.MonthlyStatus = append(s.MonthlyStatus, MonthlyStatus{
			Month:  fmt.Sprintf("%02d/%02d", k.year%100, k.month),
			Counts: monthly[k],
		})
	}
	return s
}
