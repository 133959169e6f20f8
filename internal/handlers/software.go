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
	softwarePage     = "software"
	softwareLabel    = "소프트웨어"
	softwareLocation = "자산대장"
	softwarePrefix   = "SW"
)

func translateSoftware(r *models.Software) {
	r.StatusName = codes.Name(models.GroupSoftwareStatus, r.StatusCode)
	r.ClassName = codes.Name(models.GroupSoftwareClass, r.ClassCode)
}

func softwareRow(r models.Software) report.Row {
	return report.Row{
		ID:       r.ID,
		Code:     r.Code,
		Title:    r.Title,
		Status:   r.StatusName,
		Team:     r.Team,
		Assignee: r.Assignee,
		Category: r.ClassName,
		Date:     r.PurchaseDate,
		Creator:  r.CreatedBy,
	}
}

func softwareTarget(r models.Software) changelog.Target {
	return changelog.Target{
		Page:        softwarePage,
		ModuleLabel: softwareLabel,
		Code:        r.Code,
		Title:       r.Title,
		Location:    softwareLocation,
	}
}

var softwareFields = []report.Field[models.Software]{
	{Name: "title", Label: "소프트웨어명", Value: func(r models.Software) string { return r.Title }},
	{Name: "status", Label: "상태", Value: func(r models.Software) string { return r.StatusName }},
	{Name: "class", Label: "자산분류", Value: func(r models.Software) string { return r.ClassName }},
	{Name: "team", Label: "팀", Value: func(r models.Software) string { return r.Team }},
	{Name: "assignee", Label: "담당자", Value: func(r models.Software) string { return r.Assignee }},
	{Name: "vendor", Label: "공급업체", Value: func(r models.Software) string { return r.Vendor }},
	{Name: "version", Label: "버전", Value: func(r models.Software) string { return r.Version }},
	{Name: "purchaseDate", Label: "구매일", Value: func(r models.Software) string { return r.PurchaseDate }},
	{Name: "expiryDate", Label: "만료일", Value: func(r models.Software) string { return r.ExpiryDate }},
	{Name: "remark", Label: "비고", Value: func(r models.Software) string { return r.Remark }},
}

type softwareForm struct {
	Title        string `json:"title" binding:"required"`
	StatusCode   string `json:"statusCode"`
	ClassCode    string `json:"classCode"`
	Team         string `json:"team"`
	Assignee     string `json:"assignee"`
	Vendor       string `json:"vendor"`
	Version      string `json:"version"`
	PurchaseDate string `json:"purchaseDate"`
	ExpiryDate   string `json:"expiryDate"`
	Remark       string `json:"remark"`
}

func (f softwareForm) apply(r *models.Software) {
	r.Title = f.Title
	r.StatusCode = f.StatusCode
	r.ClassCode = f.ClassCode
	r.Team = f.Team
	r.Assignee = f.Assignee
	r.Vendor = f.Vendor
	r.Version = f.Version
	r.PurchaseDate = f.PurchaseDate
	r.ExpiryDate = f.ExpiryDate
	r.Remark = f.Remark
}

func ListSoftware(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSoftware)
	if !ok {
		return
	}
	respondList(c, records, softwareRow)
}

func SoftwareDashboard(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSoftware)
	if !ok {
		return
	}
	respondDashboard(c, records, softwareRow)
}

func SoftwareKanban(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSoftware)
	if !ok {
		return
	}
	respondKanban(c, records, softwareRow)
}

func SoftwareChangeLog(c *gin.Context) {
	respondChangeLog(c, softwarePage)
}

func CreateSoftware(c *gin.Context) {
	if !requireCreate(c) {
		return
	}
	who, ok := actor(c)
	if !ok {
		return
	}

	var form softwareForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var rec models.Software
	form.apply(&rec)
	if rec.StatusCode == "" {
		rec.StatusCode = "SUB001"
	}
	rec.Code = newCode[models.Software](softwarePrefix)
	rec.CreatedBy = who.Name

	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to create software: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "등록에 실패했습니다"})
		return
	}

	translateSoftware(&rec)
	database.CreateChangeLog(changelog.AddEntry(softwareTarget(rec), who))
	c.JSON(http.StatusCreated, rec)
}

func UpdateSoftware(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var before models.Software
	if err := database.DB.First(&before, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateSoftware(&before)

	if !report.CanEdit(before.CreatedBy, before.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다"})
		return
	}

	var form softwareForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	after := before
	form.apply(&after)
	translateSoftware(&after)

	changes := report.Diff(before, after, softwareFields)

	if err := database.DB.Save(&after).Error; err != nil {
		log.Printf("failed to update software %s: %v", before.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(softwareTarget(after), changes, who))
	c.JSON(http.StatusOK, after)
}

func MoveSoftwareStatus(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Software
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateSoftware(&rec)

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
		return codes.Sub(models.GroupSoftwareStatus, name)
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
		log.Printf("failed to move software %s status: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(
		softwareTarget(rec),
		[]report.Change{report.StatusChange(oldName, form.Status)},
		who,
	))
	c.JSON(http.StatusOK, gin.H{"code": rec.Code, "before": oldName, "after": form.Status})
}

func DeleteSoftware(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Software
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다"})
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.Printf("failed to delete software %s: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	database.CreateChangeLog(changelog.DeleteEntry(softwareTarget(rec), who))
	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

func DeleteSoftwares(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var form deleteForm
	if err := c.ShouldBindJSON(&form); err != nil || len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var records []models.Software
	if err := database.DB.Find(&records, form.IDs).Error; err != nil {
		log.Printf("failed to fetch software for delete: %v", err)
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

	if err := database.DB.Delete(&models.Software{}, form.IDs).Error; err != nil {
		log.Printf("failed to delete software records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	entries := make([]models.ChangeLog, 0, len(records))
	for _, rec := range records {
		entries = append(entries, changelog.DeleteEntry(softwareTarget(rec), who))
	}
	database.CreateChangeLogs(entries)
	c.JSON(http.StatusOK, gin.H{"deleted": len(records)})
}
