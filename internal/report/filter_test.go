package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []Row {
	return []Row{
		{ID: 1, Status: "대기", Team: "A", Assignee: "Kim", Date: "2024-03-01"},
		{ID: 2, Status: "진행", Team: "B", Assignee: "Lee", Date: "2024-07-01"},
	}
}

func TestFilter_AllWildcardsReturnInputUnchanged(t *testing.T) {
	rows := sampleRows()
	f := Filters{Year: Wildcard, Team: Wildcard, Status: Wildcard, Assignee: Wildcard}

	got := Filter(rows, f)
	assert.Equal(t, rows, got)
}

func TestFilter_YearMatchesBoth(t *testing.T) {
	got := Filter(sampleRows(), Filters{Year: "2024", Team: Wildcard, Status: Wildcard, Assignee: Wildcard})
	assert.Len(t, got, 2)
}

func TestFilter_TeamNarrowsToFirst(t *testing.T) {
	got := Filter(sampleRows(), Filters{Year: "2024", Team: "A", Status: Wildcard, Assignee: Wildcard})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestFilter_Conjunction(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want []uint
	}{
		{"상태만", Filters{Status: "진행"}, []uint{2}},
		{"담당자만", Filters{Assignee: "Kim"}, []uint{1}},
		{"팀+상태 불일치", Filters{Team: "A", Status: "진행"}, nil},
		{"팀+상태 일치", Filters{Team: "B", Status: "진행"}, []uint{2}},
		{"연도 불일치", Filters{Year: "2023"}, nil},
		{"빈 값은 와일드카드 취급", Filters{}, []uint{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleRows(), tt.f)
			var ids []uint
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_UnparsableDateNeverMatchesYear(t *testing.T) {
	rows := []Row{
		{ID: 1, Date: "not-a-date"},
		{ID: 2, Date: ""},
		{ID: 3, Date: "2024-13-99"},
	}

	// 연도 필터가 걸리면 전부 탈락
	assert.Empty(t, Filter(rows, Filters{Year: "2024"}))

	// 와일드카드면 그대로 통과
	assert.Len(t, Filter(rows, Filters{Year: Wildcard}), 3)
}

func TestFilter_CaseSensitiveExactMatch(t *testing.T) {
	rows := []Row{{ID: 1, Team: "A", Assignee: "Kim"}}

	assert.Empty(t, Filter(rows, Filters{Team: "a"}))
	assert.Empty(t, Filter(rows, Filters{Assignee: "kim"}))
	assert.Empty(t, Filter(rows, Filters{Assignee: "Ki"}))
}

func TestFilterRecords_KeepsOriginalRecords(t *testing.T) {
	type rec struct {
		Name string
		Team string
	}
	records := []rec{{"하나", "A"}, {"둘", "B"}}
	proj := func(r rec) Row { return Row{Team: r.Team} }

	got := FilterRecords(records, proj, Filters{Team: "B"})
	require.Len(t, got, 1)
	assert.Equal(t, "둘", got[0].Name)
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		rec  [2]string // creator, assignee
		who  string
		want bool
	}{
		{"타인 수정 권한", Capabilities{CanEditOthers: true}, [2]string{"김부장", "이사원"}, "박대리", true},
		{"본인 권한 + 생성자", Capabilities{CanEditOwn: true}, [2]string{"박대리", "이사원"}, "박대리", true},
		{"본인 권한 + 담당자", Capabilities{CanEditOwn: true}, [2]string{"김부장", "박대리"}, "박대리", true},
		{"본인 권한 + 무관", Capabilities{CanEditOwn: true}, [2]string{"김부장", "이사원"}, "박대리", false},
		{"권한 없음", Capabilities{}, [2]string{"박대리", "박대리"}, "박대리", false},
		{"빈 작업자", Capabilities{CanEditOwn: true}, [2]string{"", ""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanEdit(tt.rec[0], tt.rec[1], tt.who, tt.caps)
			assert.Equal(t, tt.want, got)
		})
	}
}
