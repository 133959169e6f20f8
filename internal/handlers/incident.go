package handlers

import (
	"log"
	"net/http"

	"opsboard/internal/changelog"
	"opsboard/internal/codes"
	"opsboard/internal/database"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/gin-gonic/gin"
)

const (
	incidentPage     = "incident"
	incidentLabel    = "보안사고"
	incidentLocation = "관리대장"
	incidentPrefix   = "INC"
)

func translateIncident(r *models.Incident) {
	r.StatusName = codes.Name(models.GroupIncidentStatus, r.StatusCode)
	r.TypeName = codes.Name(models.GroupIncidentType, r.TypeCode)
}

func incidentRow(r models.Incident) report.Row {
	return report.Row{
		ID:       r.ID,
		Code:     r.Code,
		Title:    r.Title,
		Status:   r.StatusName,
		Team:     r.Team,
		Assignee: r.Assignee,
		Category: r.TypeName,
		Date:     r.OccurredDate,
		Creator:  r.CreatedBy,
	}
}

func incidentTarget(r models.Incident) changelog.Target {
	return changelog.Target{
		Page:        incidentPage,
		ModuleLabel: incidentLabel,
		Code:        r.Code,
		Title:       r.Title,
		Location:    incidentLocation,
	}
}

// 감사 대상 필드의 닫힌 목록. 여기 없는 필드는 바뀌어도 이력이 남지 않는다.
var incidentFields = []report.Field[models.Incident]{
	{Name: "title", Label: "사고명", Value: func(r models.Incident) string { return r.Title }},
	{Name: "status", Label: "상태", Value: func(r models.Incident) string { return r.StatusName }},
	{Name: "type", Label: "사고유형", Value: func(r models.Incident) string { return r.TypeName }},
	{Name: "team", Label: "팀", Value: func(r models.Incident) string { return r.Team }},
	{Name: "assignee", Label: "담당자", Value: func(r models.Incident) string { return r.Assignee }},
	{Name: "occurredDate", Label: "발생일", Value: func(r models.Incident) string { return r.OccurredDate }},
	{Name: "completedDate", Label: "완료일", Value: func(r models.Incident) string { return r.CompletedDate }},
	{Name: "mainContent", Label: "주요내용", Value: func(r models.Incident) string { return r.MainContent }},
	{Name: "cause", Label: "원인", Value: func(r models.Incident) string { return r.Cause }},
}

type incidentForm struct {
	Title         string `json:"title" binding:"required"`
	StatusCode    string `json:"statusCode"`
	TypeCode      string `json:"typeCode"`
	Team          string `json:"team"`
	Assignee      string `json:"assignee"`
	OccurredDate  string `json:"occurredDate"`
	CompletedDate string `json:"completedDate"`
	MainContent   string `json:"mainContent"`
	Cause         string `json:"cause"`
}

func (f incidentForm) apply(r *models.Incident) {
	r.Title = f.Title
	r.StatusCode = f.StatusCode
	r.TypeCode = f.TypeCode
	r.Team = f.Team
	r.Assignee = f.Assignee
	r.OccurredDate = f.OccurredDate
	r.CompletedDate = f.CompletedDate
	r.MainContent = f.MainContent
	r.Cause = f.Cause
}

//
// 조회
//

func ListIncidents(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateIncident)
	if !ok {
		return
	}
	respondList(c, records, incidentRow)
}

func IncidentDashboard(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateIncident)
	if !ok {
		return
	}
	respondDashboard(c, records, incidentRow)
}

func IncidentKanban(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateIncident)
	if !ok {
		return
	}
	respondKanban(c, records, incidentRow)
}

func IncidentChangeLog(c *gin.Context) {
	respondChangeLog(c, incidentPage)
}

//
// 등록
//

func CreateIncident(c *gin.Context) {
	if !requireCreate(c) {
		return
	}
	who, ok := actor(c)
	if !ok {
		return
	}

	var form incidentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var rec models.Incident
	form.apply(&rec)
	if rec.StatusCode == "" {
		rec.StatusCode = "SUB001" // 대기
	}
	rec.Code = newCode[models.Incident](incidentPrefix)
	rec.CreatedBy = who.Name

	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to create incident: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "등록에 실패했습니다"})
		return
	}

	translateIncident(&rec)
	database.CreateChangeLog(changelog.AddEntry(incidentTarget(rec), who))
	c.JSON(http.StatusCreated, rec)
}

//
// 수정
//

func UpdateIncident(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var before models.Incident
	if err := database.DB.First(&before, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateIncident(&before)

	if !report.CanEdit(before.CreatedBy, before.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다"})
		return
	}

	var form incidentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	after := before
	form.apply(&after)
	translateIncident(&after)

	changes := report.Diff(before, after, incidentFields)

	if err := database.DB.Save(&after).Error; err != nil {
		log.Printf("failed to update incident %s: %v", before.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다"})
		return
	}

	// 변경이 없으면 이력도 없다
	database.CreateChangeLogs(changelog.EditEntries(incidentTarget(after), changes, who))
	c.JSON(http.StatusOK, after)
}

//
// 칸반 상태 이동
//

func MoveIncidentStatus(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Incident
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateIncident(&rec)

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "이동 권한이 없습니다"})
		return
	}

	var form statusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	oldName := rec.StatusName
	sub, res := resolveMove(oldName, form.Status, func(name string) (string, bool) {
		return codes.Sub(models.GroupIncidentStatus, name)
	})
	switch res {
	case moveSame:
		c.JSON(http.StatusOK, gin.H{"code": rec.Code, "status": oldName})
		return
	case moveUnknown:
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 상태입니다"})
		return
	}

	// 실패 시 이력 없이 에러만 — 클라이언트가 이전 상태로 되돌린다
	if err := database.DB.Model(&rec).Update("status_code", sub).Error; err != nil {
		log.Printf("failed to move incident %s status: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(
		incidentTarget(rec),
		[]report.Change{report.StatusChange(oldName, form.Status)},
		who,
	))
	c.JSON(http.StatusOK, gin.H{"code": rec.Code, "before": oldName, "after": form.Status})
}

//
// 삭제
//

func DeleteIncident(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Incident
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다"})
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.Printf("failed to delete incident %s: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	database.CreateChangeLog(changelog.DeleteEntry(incidentTarget(rec), who))
	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

func DeleteIncidents(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var form deleteForm
	if err := c.ShouldBindJSON(&form); err != nil || len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var records []models.Incident
	if err := database.DB.Find(&records, form.IDs).Error; err != nil {
		log.Printf("failed to fetch incidents for delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	caps := middleware.Caps(c)
	for _, rec := range records {
		if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, caps) {
			c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없는 기록이 포함되어 있습니다"})
			return
		}
	}

	if err := database.DB.Delete(&models.Incident{}, form.IDs).Error; err != nil {
		log.Printf("failed to delete incidents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	entries := make([]models.ChangeLog, 0, len(records))
	for _, rec := range records {
		entries = append(entries, changelog.DeleteEntry(incidentTarget(rec), who))
	}
	database.CreateChangeLogs(entries)
	c.JSON(http.StatusOK, gin.H{"deleted": len(records)})
}
