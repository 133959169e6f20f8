// Package codes 는 마스터 코드(그룹코드+서브코드 → 표시명) 조회를 담당한다.
// 코드 테이블은 운영 중 바뀌지 않으므로 기동 시 한 번 읽어 메모리에 둔다.
package codes

import (
	"fmt"
	"log"

	"opsboard/internal/models"

	"gorm.io/gorm"
)

var (
	byKey  map[string]models.MasterCode
	byName map[string]string
	groups map[string][]models.MasterCode
)

func key(group, sub string) string {
	return group + "/" + sub
}

// Init 은 마스터 코드 전체를 읽어 캐시를 만든다. database.Init 이후 호출.
func Init(db *gorm.DB) error {
	var list []models.MasterCode
	if err := db.Order("group_code asc, sort_order asc").Find(&list).Error; err != nil {
		return fmt.Errorf("load master codes: %w", err)
	}
	load(list)
	log.Printf("loaded %d master codes", len(list))
	return nil
}

func load(list []models.MasterCode) {
	byKey = make(map[string]models.MasterCode, len(list))
	byName = make(map[string]string, len(list))
	groups = make(map[string][]models.MasterCode)
	for _, mc := range list {
		byKey[key(mc.GroupCode, mc.SubCode)] = mc
		byName[key(mc.GroupCode, mc.Name)] = mc.SubCode
		groups[mc.GroupCode] = append(groups[mc.GroupCode], mc)
	}
}

// Name 은 서브코드를 표시명으로 바꾼다. 모르는 코드는 그대로 돌려줘서
// 변환 안 된 값이 화면에 노출되도록 한다.
func Name(group, sub string) string {
	if mc, ok := byKey[key(group, sub)]; ok {
		return mc.Name
	}
	return sub
}

// Sub 은 표시명에서 서브코드를 역조회한다.
func Sub(group, name string) (string, bool) {
	sub, ok := byName[key(group, name)]
	return sub, ok
}

// Group 은 한 그룹의 코드를 sort_order 순으로 돌려준다.
func Group(group string) []models.MasterCode {
	return groups[group]
}
