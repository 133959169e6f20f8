package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJosa(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"상태", "가"},   // 받침 없음
		{"담당자", "가"},
		{"팀", "이"},    // 받침 있음
		{"내용", "이"},
		{"발생일", "이"},
		{"제목", "이"},
		{"INC-2024-0001", "이"}, // 한글 아님 → 받침 취급
		{"", "이"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Josa(tt.word, "이", "가"))
		})
	}
}

func TestJosa_EulReul(t *testing.T) {
	assert.Equal(t, "을", Josa("팀", "을", "를"))
	assert.Equal(t, "를", Josa("상태", "을", "를"))
}

func TestEditMessage(t *testing.T) {
	got := EditMessage("보안사고", "서버침해", "INC-2024-0001", "관리대장", "상태", "대기", "진행")
	assert.Equal(t, "보안사고 서버침해(INC-2024-0001) 관리대장 상태가 대기 → 진행 로 수정 되었습니다.", got)
}

func TestEditMessage_FieldWithFinalConsonant(t *testing.T) {
	got := EditMessage("업무", "정기점검", "TSK-2024-0002", "업무대장", "팀", "A", "B")
	assert.Equal(t, "업무 정기점검(TSK-2024-0002) 업무대장 팀이 A → B 로 수정 되었습니다.", got)
}

func TestAddMessage(t *testing.T) {
	got := AddMessage("보안사고", "서버침해", "INC-2024-0001", "관리대장")
	assert.Equal(t, "보안사고 서버침해(INC-2024-0001)이 관리대장에 추가 되었습니다.", got)
}

func TestDeleteMessage(t *testing.T) {
	got := DeleteMessage("VOC", "응대 지연 불만", "VOC-2024-0010", "접수대장")
	assert.Equal(t, "VOC 응대 지연 불만(VOC-2024-0010)이 접수대장에서 삭제 되었습니다.", got)
}
