package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"opsboard/internal/changelog"
	"opsboard/internal/database"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/gin-gonic/gin"
)

// 칸반 컬럼 순서. 모든 모듈이 같은 네 단계를 쓴다.
var statusBuckets = []string{"대기", "진행", "완료", "홀딩"}

const defaultPageSize = 20

// 칸반 이동 요청. 상태는 표시명으로 받는다.
type statusForm struct {
	Status string `json:"status" binding:"required"`
}

// 일괄 삭제 요청
type deleteForm struct {
	IDs []uint `json:"ids" binding:"required"`
}

type moveResult int

const (
	moveOK moveResult = iota
	moveSame
	moveUnknown
)

// resolveMove 는 칸반 이동 요청의 목표 상태를 서브코드로 풀어낸다.
// 같은 상태로의 이동은 기록 없이 끝내고, 모르는 상태는 거절한다.
func resolveMove(current, target string, lookup func(string) (string, bool)) (string, moveResult) {
	if target == current {
		return "", moveSame
	}
	sub, found := lookup(target)
	if !found {
		return "", moveUnknown
	}
	return sub, moveOK
}

func parseFilters(c *gin.Context) report.Filters {
	return report.Filters{
		Year:     c.DefaultQuery("year", report.Wildcard),
		Team:     c.DefaultQuery("team", report.Wildcard),
		Status:   c.DefaultQuery("status", report.Wildcard),
		Assignee: c.DefaultQuery("assignee", report.Wildcard),
	}
}

func paginate(c *gin.Context) (offset, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 || size > 100 {
		size = defaultPageSize
	}
	return (page - 1) * size, size
}

// actor 는 이력에 남길 현재 사용자 정보를 꺼낸다. 세션이 깨져 있으면 401.
func actor(c *gin.Context) (changelog.Actor, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다"})
		return changelog.Actor{}, false
	}
	return changelog.Actor{Name: user.Name, Team: user.Team}, true
}

func requireRead(c *gin.Context) bool {
	if !middleware.Caps(c).CanReadData {
		c.JSON(http.StatusForbidden, gin.H{"error": "조회 권한이 없습니다"})
		return false
	}
	return true
}

func requireCreate(c *gin.Context) bool {
	if !middleware.Caps(c).CanCreateData {
		c.JSON(http.StatusForbidden, gin.H{"error": "등록 권한이 없습니다"})
		return false
	}
	return true
}

// fetchAll 은 모듈 전체 레코드를 최신순으로 읽고 코드 필드를 표시명으로 변환한다.
// 실패하면 응답까지 끝내고 ok=false 를 돌려준다.
func fetchAll[T any](c *gin.Context, translate func(*T)) ([]T, bool) {
	var records []T
	if err := database.DB.Order("created_at desc").Find(&records).Error; err != nil {
		log.Printf("failed to fetch records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "목록 조회에 실패했습니다"})
		return nil, false
	}
	for i := range records {
		translate(&records[i])
	}
	return records, true
}

// respondList — 필터 + 페이지네이션을 적용한 표 형식 응답.
func respondList[T any](c *gin.Context, records []T, proj func(T) report.Row) {
	filtered := report.FilterRecords(records, proj, parseFilters(c))
	offset, limit := paginate(c)

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"items": filtered[offset:end],
	})
}

// respondDashboard — 필터링된 집합의 집계 응답.
func respondDashboard[T any](c *gin.Context, records []T, proj func(T) report.Row) {
	rows := make([]report.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, proj(rec))
	}
	filtered := report.Filter(rows, parseFilters(c))
	summary := report.Aggregate(filtered, statusBuckets)

	// 카테고리 차트는 권한이 있어야 보인다
	if !middleware.Caps(c).CanViewCategory {
		summary.CategoryCounts = report.NewCountMap()
	}
	c.JSON(http.StatusOK, summary)
}

type kanbanColumn[T any] struct {
	Status  string `json:"status"`
	Records []T    `json:"records"`
}

// respondKanban — 버킷 순서 고정. 버킷에 안 맞는 상태는 어디에도 안 나온다.
func respondKanban[T any](c *gin.Context, records []T, proj func(T) report.Row) {
	filtered := report.FilterRecords(records, proj, parseFilters(c))
	grouped := report.GroupByStatus(filtered, func(r T) string { return proj(r).Status }, statusBuckets)

	columns := make([]kanbanColumn[T], 0, len(statusBuckets))
	for _, b := range statusBuckets {
		columns = append(columns, kanbanColumn[T]{Status: b, Records: grouped[b]})
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// respondChangeLog — 페이지별 변경 이력, 최신순 페이지네이션.
func respondChangeLog(c *gin.Context, page string) {
	if !requireRead(c) {
		return
	}
	offset, limit := paginate(c)

	var total int64
	if err := database.DB.Model(&models.ChangeLog{}).
		Where("page = ?", page).
		Count(&total).Error; err != nil {
		log.Printf("failed to count change logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이력 조회에 실패했습니다"})
		return
	}

	var logs []models.ChangeLog
	if err := database.DB.
		Where("page = ?", page).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		log.Printf("failed to fetch change logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이력 조회에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "items": logs})
}

// newCode 는 사람이 읽는 관리코드를 만든다. 연도별 일련번호는 같은 해에 만든
// 레코드 수(삭제분 포함)에서 딴다. code 의 unique index 가 최종 방어선.
func newCode[T any](prefix string) string {
	year := time.Now().Year()
	var count int64
	if err := database.DB.Model(new(T)).Unscoped().
		Where("code LIKE ?", fmt.Sprintf("%s-%d-%%", prefix, year)).
		Count(&count).Error; err != nil {
		log.Printf("failed to count codes for %s: %v", prefix, err)
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, count+1)
}
