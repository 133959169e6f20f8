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
	vocPage     = "voc"
	vocLabel    = "VOC"
	vocLocation = "접수대장"
	vocPrefix   = "VOC"
)

func translateVoc(r *models.Voc) {
	r.StatusName = codes.Name(models.GroupVocStatus, r.StatusCode)
	r.TypeName = codes.Name(models.GroupVocType, r.TypeCode)
}

func vocRow(r models.Voc) report.Row {
	return report.Row{
		ID:       r.ID,
		Code:     r.Code,
		Title:    r.Title,
		Status:   r.StatusName,
		Team:     r.Team,
		Assignee: r.Assignee,
		Category: r.TypeName,
		Date:     r.ReceivedDate,
		Creator:  r.CreatedBy,
	}
}

func vocTarget(r models.Voc) changelog.Target {
	return changelog.Target{
		Page:        vocPage,
		ModuleLabel: vocLabel,
		Code:        r.Code,
		Title:       r.Title,
		Location:    vocLocation,
	}
}

var vocFields = []report.Field[models.Voc]{
	{Name: "title", Label: "제목", Value: func(r models.Voc) string { return r.Title }},
	{Name: "status", Label: "상태", Value: func(r models.Voc) string { return r.StatusName }},
	{Name: "type", Label: "VOC유형", Value: func(r models.Voc) string { return r.TypeName }},
	{Name: "customer", Label: "고객사", Value: func(r models.Voc) string { return r.Customer }},
	{Name: "team", Label: "팀", Value: func(r models.Voc) string { return r.Team }},
	{Name: "assignee", Label: "담당자", Value: func(r models.Voc) string { return r.Assignee }},
	{Name: "receivedDate", Label: "접수일", Value: func(r models.Voc) string { return r.ReceivedDate }},
	{Name: "completedDate", Label: "완료일", Value: func(r models.Voc) string { return r.CompletedDate }},
	{Name: "content", Label: "내용", Value: func(r models.Voc) string { return r.Content }},
}

type vocForm struct {
	Title         string `json:"title" binding:"required"`
	StatusCode    string `json:"statusCode"`
	TypeCode      string `json:"typeCode"`
	Customer      string `json:"customer"`
	Team          string `json:"team"`
	Assignee      string `json:"assignee"`
	ReceivedDate  string `json:"receivedDate"`
	CompletedDate string `json:"completedDate"`
	Content       string `json:"content"`
}

func (f vocForm) apply(r *models.Voc) {
	r.Title = f.Title
	r.StatusCode = f.StatusCode
	r.TypeCode = f.TypeCode
	r.Customer = f.Customer
	r.Team = f.Team
	r.Assignee = f.Assignee
	r.ReceivedDate = f.ReceivedDate
	r.CompletedDate = f.CompletedDate
	r.Content = f.Content
}

func ListVocs(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateVoc)
	if !ok {
		return
	}
	respondList(c, records, vocRow)
}

func VocDashboard(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateVoc)
	if !ok {
		return
	}
	respondDashboard(c, records, vocRow)
}

func VocKanban(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateVoc)
	if !ok {
		return
	}
	respondKanban(c, records, vocRow)
}

func VocChangeLog(c *gin.Context) {
	respondChangeLog(c, vocPage)
}

func CreateVoc(c *gin.Context) {
	if !requireCreate(c) {
		return
	}
	who, ok := actor(c)
	if !ok {
		return
	}

	var form vocForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var rec models.Voc
	form.apply(&rec)
	if rec.StatusCode == "" {
		rec.StatusCode = "SUB001"
	}
	rec.Code = newCode[models.Voc](vocPrefix)
	rec.CreatedBy = who.Name

	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to create voc: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "등록에 실패했습니다"})
		return
	}

	translateVoc(&rec)
	database.CreateChangeLog(changelog.AddEntry(vocTarget(rec), who))
	c.JSON(http.StatusCreated, rec)
}

func UpdateVoc(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var before models.Voc
	if err := database.DB.First(&before, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateVoc(&before)

	if !report.CanEdit(before.CreatedBy, before.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다"})
		return
	}

	var form vocForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	after := before
	form.apply(&after)
	translateVoc(&after)

	changes := report.Diff(before, after, vocFields)

	if err := database.DB.Save(&after).Error; err != nil {
		log.Printf("failed to update voc %s: %v", before.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(vocTarget(after), changes, who))
	c.JSON(http.StatusOK, after)
}

func MoveVocStatus(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Voc
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateVoc(&rec)

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
		return codes.Sub(models.GroupVocStatus, name)
	})
	switch res {
	case moveSame:
		c.JSON(http.StatusOK, gin.H{"code": rec.Code, "status": oldName})
		return
	case moveUnknown:
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 상태입니다"})
		return
	}

	if err := database.DB.Model(&rec).Update("status_code", sub).Error; err != nil {
		log.Printf("failed to move voc %s status: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(
		vocTarget(rec),
		[]report.Change{report.StatusChange(oldName, form.Status)},
		who,
	))
	c.JSON(http.StatusOK, gin.H{"code": rec.Code, "before": oldName, "after": form.Status})
}

func DeleteVoc(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Voc
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다"})
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.Printf("failed to delete voc %s: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	database.CreateChangeLog(changelog.DeleteEntry(vocTarget(rec), who))
	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

func DeleteVocs(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var form deleteForm
	if err := c.ShouldBindJSON(&form); err != nil || len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var records []models.Voc
	if err := database.DB.Find(&records, form.IDs).Error; err != nil {
		log.Printf("failed to fetch vocs for delete: %v", err)
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

	if err := database.DB.Delete(&models.Voc{}, form.IDs).Error; err != nil {
		log.Printf("failed to delete vocs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	entries := make([]models.ChangeLog, 0, len(records))
	for _, rec := range records {
		entries = append(entries, changelog.DeleteEntry(vocTarget(rec), who))
	}
	database.CreateChangeLogs(entries)
	c.JSON(http.StatusOK, gin.H{"deleted": len(records)})
}
