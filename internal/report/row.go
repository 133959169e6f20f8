// Package report 는 모듈 공용 데이터 변환 로직을 모은다.
// 필터, 집계, 필드 diff, 칸반 그룹핑 전부 순수 함수로, DB/HTTP 에 의존하지 않는다.
package report

// 필터의 "전체" 와일드카드 값
const Wildcard = "전체"

// 집계 시 빈 값 대체 버킷
const (
	CategoryOther = "기타"
	Unassigned    = "미할당"
)

// Row — 집계/필터용으로 투영된 공통 뷰. 코드 필드는 이미 표시명으로 변환된 상태.
type Row struct {
	ID       uint
	Code     string
	Title    string
	Status   string // 표시명
	Team     string
	Assignee string
	Category string // 모듈별 카테고리 차원 (사고유형/부서/VOC유형 등)
	Date     string // 연도 필터, 월별 집계 기준일 (YYYY-MM-DD)
	Creator  string
}

// Filters — 네 차원 모두 AND 조건. Wildcard 는 해당 차원 무시.
type Filters struct {
	Year     string
	Team     string
	Status   string
	Assignee string
}

// Capabilities — 페이지별 권한 해석 결과. 해석 자체는 외부(permission 테이블) 담당.
type Capabilities struct {
	CanViewCategory bool `json:"canViewCategory"`
	CanReadData     bool `json:"canReadData"`
	CanCreateData   bool `json:"canCreateData"`
	CanEditOwn      bool `json:"canEditOwn"`
	CanEditOthers   bool `json:"canEditOthers"`
}

// CanEdit 는 기록 수정/삭제/상태이동 허용 여부를 판단한다.
// 타인 기록 수정 권한이 있으면 무조건 허용, 본인 기록 권한만 있으면
// 생성자이거나 담당자일 때만 허용.
func CanEdit(creator, assignee, actor string, caps Capabilities) bool {
	if caps.CanEditOthers {
		return true
	}
	if caps.CanEditOwn {
		return actor != "" && (actor == creator || actor == assignee)
	}
	return false
}
