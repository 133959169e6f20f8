package database

import (
	"fmt"
	"log"

	"opsboard/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// 관리자는 폼이 아니라 설정으로만 만든다
func createDefaultAdmin(username, password string) {
	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "관리자",
		Team:         "정보보호팀",
		Position:     "팀장",
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}

// 데모용 계정 (manager / member)
func seedDefaultUsers() {
	type seedUser struct {
		Username string
		Password string
		Name     string
		Team     string
		Position string
		Role     models.UserRole
	}

	users := []seedUser{
		{
			Username: "manager@opsboard.local",
			Password: "Manager123!",
			Name:     "김부장",
			Team:     "경영지원팀",
			Position: "부장",
			Role:     models.RoleManager,
		},
		{
			Username: "member@opsboard.local",
			Password: "Member123!",
			Name:     "이사원",
			Team:     "정보보호팀",
			Position: "사원",
			Role:     models.RoleMember,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Name:         u.Name,
			Team:         u.Team,
			Position:     u.Position,
			Role:         u.Role,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}
}

// 상태 코드는 전 모듈 공통 네 단계, 유형 코드는 모듈별.
func seedMasterCodes() {
	var count int64
	if err := DB.Model(&models.MasterCode{}).Count(&count).Error; err != nil {
		log.Printf("failed to check master codes: %v", err)
		return
	}
	if count > 0 {
		return
	}

	statusGroups := []string{
		models.GroupIncidentStatus,
		models.GroupSoftwareStatus,
		models.GroupTaskStatus,
		models.GroupVocStatus,
		models.GroupSaleStatus,
	}
	statusNames := []string{"대기", "진행", "완료", "홀딩"}

	var seeds []models.MasterCode
	for _, g := range statusGroups {
		for i, name := range statusNames {
			seeds = append(seeds, models.MasterCode{
				GroupCode: g,
				SubCode:   subCode(i + 1),
				Name:      name,
				SortOrder: i + 1,
			})
		}
	}

	typeGroups := map[string][]string{
		models.GroupIncidentType:  {"해킹시도", "악성코드", "정보유출", "기타"},
		models.GroupSoftwareClass: {"운영체제", "오피스", "보안", "개발도구"},
		models.GroupVocType:       {"불만", "문의", "요청", "칭찬"},
		models.GroupSaleType:      {"신규", "갱신", "유지보수", "기타"},
	}
	for g, names := range typeGroups {
		for i, name := range names {
			seeds = append(seeds, models.MasterCode{
				GroupCode: g,
				SubCode:   subCode(i + 1),
				Name:      name,
				SortOrder: i + 1,
			})
		}
	}

	if err := DB.Create(&seeds).Error; err != nil {
		log.Printf("failed to seed master codes: %v", err)
		return
	}
	log.Printf("seeded %d master codes", len(seeds))
}

func subCode(n int) string {
	return fmt.Sprintf("SUB%03d", n)
}

var pages = []string{"incident", "software", "task", "voc", "sale"}

// 역할 × 페이지 권한. 행이 없는 조합은 전부 불허로 해석된다.
func seedPermissions() {
	var count int64
	if err := DB.Model(&models.Permission{}).Count(&count).Error; err != nil {
		log.Printf("failed to check permissions: %v", err)
		return
	}
	if count > 0 {
		return
	}

	caps := map[models.UserRole][5]bool{
		// viewCategory, readData, createData, editOwn, editOthers
		models.RoleAdmin:   {true, true, true, true, true},
		models.RoleManager: {true, true, true, true, true},
		models.RoleMember:  {true, true, true, true, false},
		models.RoleViewer:  {true, true, false, false, false},
	}

	var seeds []models.Permission
	for role, c := range caps {
		for _, page := range pages {
			seeds = append(seeds, models.Permission{
				Role:            role,
				Page:            page,
				CanViewCategory: c[0],
				CanReadData:     c[1],
				CanCreateData:   c[2],
				CanEditOwn:      c[3],
				CanEditOthers:   c[4],
			})
		}
	}

	if err := DB.Create(&seeds).Error; err != nil {
		log.Printf("failed to seed permissions: %v", err)
		return
	}
	log.Printf("seeded %d permissions", len(seeds))
}
