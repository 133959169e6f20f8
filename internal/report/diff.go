package report

import "strings"

// Field — 모듈별 감사 대상 필드 정의. 이 테이블에 없는 필드는
// 값이 바뀌어도 이력을 남기지 않는다(닫힌 계약).
type Field[T any] struct {
	Name  string // 내부 필드명
	Label string // 이력에 남는 표시명
	Value func(T) string
}

// Change — 감지된 필드 단위 변경 한 건.
type Change struct {
	Field  string `json:"field"`
	Label  string `json:"label"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Diff 는 필드 테이블 순서대로 변경을 찾는다.
// 비교 시에만 공백을 정리하고, 결과에는 원래 값을 그대로 담는다.
func Diff[T any](before, after T, fields []Field[T]) []Change {
	var changes []Change
	for _, f := range fields {
		b := f.Value(before)
		a := f.Value(after)
		if strings.TrimSpace(b) == strings.TrimSpace(a) {
			continue
		}
		changes = append(changes, Change{Field: f.Name, Label: f.Label, Before: b, After: a})
	}
	return changes
}

// StatusChange — 칸반 드래그 전용. 드래그는 상태 외의 필드를 건드리지 않으므로
// 필드 테이블을 거치지 않고 바로 상태 변경 한 건을 만든다.
func StatusChange(before, after string) Change {
	return Change{Field: "status", Label: "상태", Before: before, After: after}
}
