package report

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// yearOf 는 날짜 문자열에서 연도를 뽑는다. 파싱 실패 시 ok=false 로,
// 해당 기록은 와일드카드가 아닌 연도 필터에 절대 걸리지 않는다.
func yearOf(date string) (string, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", false
	}
	return strconv.Itoa(t.Year()), true
}

// Matches 는 한 행이 필터 네 차원을 모두 만족하는지 본다.
func Matches(r Row, f Filters) bool {
	if f.Year != "" && f.Year != Wildcard {
		y, ok := yearOf(r.Date)
		if !ok || y != f.Year {
			return false
		}
	}
	if f.Team != "" && f.Team != Wildcard && r.Team != f.Team {
		return false
	}
	if f.Status != "" && f.Status != Wildcard && r.Status != f.Status {
		return false
	}
	if f.Assignee != "" && f.Assignee != Wildcard && r.Assignee != f.Assignee {
		return false
	}
	return true
}

// Filter 는 투영된 행 목록에 필터를 적용한다.
func Filter(rows []Row, f Filters) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRecords 는 원본 레코드 목록을 유지한 채 필터링한다.
// 목록 화면처럼 전체 필드가 필요한 곳에서 사용.
func FilterRecords[T any](records []T, proj func(T) Row, f Filters) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if Matches(proj(rec), f) {
			out = append(out, rec)
		}
	}
	return out
}
