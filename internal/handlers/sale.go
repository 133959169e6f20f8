package handlers

import (
	"log"
	"net/http"
	"strconv"

	"opsboard/internal/changelog"
	"opsboard/internal/codes"
	"opsboard/internal/database"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/gin-gonic/gin"
)

const (
	salePage     = "sale"
	saleLabel    = "매출"
	saleLocation = "매출대장"
	salePrefix   = "SAL"
)

func translateSale(r *models.Sale) {
	r.StatusName = codes.Name(models.GroupSaleStatus, r.StatusCode)
	r.TypeName = codes.Name(models.GroupSaleType, r.TypeCode)
}

func saleRow(r models.Sale) report.Row {
	return report.Row{
		ID:       r.ID,
		Code:     r.Code,
		Title:    r.Title,
		Status:   r.StatusName,
		Team:     r.Team,
		Assignee: r.Assignee,
		Category: r.TypeName,
		Date:     r.RegistrationDate,
		Creator:  r.CreatedBy,
	}
}

func saleTarget(r models.Sale) changelog.Target {
	return changelog.Target{
		Page:        salePage,
		ModuleLabel: saleLabel,
		Code:        r.Code,
		Title:       r.Title,
		Location:    saleLocation,
	}
}

var saleFields = []report.Field[models.Sale]{
	{Name: "title", Label: "거래명", Value: func(r models.Sale) string { return r.Title }},
	{Name: "status", Label: "상태", Value: func(r models.Sale) string { return r.StatusName }},
	{Name: "type", Label: "매출유형", Value: func(r models.Sale) string { return r.TypeName }},
	{Name: "customer", Label: "거래처", Value: func(r models.Sale) string { return r.Customer }},
	{Name: "amount", Label: "금액", Value: func(r models.Sale) string { return strconv.FormatInt(r.Amount, 10) }},
	{Name: "team", Label: "팀", Value: func(r models.Sale) string { return r.Team }},
	{Name: "assignee", Label: "담당자", Value: func(r models.Sale) string { return r.Assignee }},
	{Name: "completedDate", Label: "완료일", Value: func(r models.Sale) string { return r.CompletedDate }},
}

type saleForm struct {
	Title            string `json:"title" binding:"required"`
	StatusCode       string `json:"statusCode"`
	TypeCode         string `json:"typeCode"`
	Customer         string `json:"customer"`
	Amount           int64  `json:"amount"`
	Team             string `json:"team"`
	Assignee         string `json:"assignee"`
	RegistrationDate string `json:"registrationDate"`
	CompletedDate    string `json:"completedDate"`
}

func (f saleForm) apply(r *models.Sale) {
	r.Title = f.Title
	r.StatusCode = f.StatusCode
	r.TypeCode = f.TypeCode
	r.Customer = f.Customer
	r.Amount = f.Amount
	r.Team = f.Team
	r.Assignee = f.Assignee
	r.RegistrationDate = f.RegistrationDate
	r.CompletedDate = f.CompletedDate
}

func ListSales(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSale)
	if !ok {
		return
	}
	respondList(c, records, saleRow)
}

func SaleDashboard(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSale)
	if !ok {
		return
	}
	respondDashboard(c, records, saleRow)
}

func SaleKanban(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateSale)
	if !ok {
		return
	}
	respondKanban(c, records, saleRow)
}

func SaleChangeLog(c *gin.Context) {
	respondChangeLog(c, salePage)
}

func CreateSale(c *gin.Context) {
	if !requireCreate(c) {
		return
	}
	who, ok := actor(c)
	if !ok {
		return
	}

	var form saleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var rec models.Sale
	form.apply(&rec)
	if rec.StatusCode == "" {
		rec.StatusCode = "SUB001"
	}
	rec.Code = newCode[models.Sale](salePrefix)
	rec.CreatedBy = who.Name

	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to create sale: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "등록에 실패했습니다"})
		return
	}

	translateSale(&rec)
	database.CreateChangeLog(changelog.AddEntry(saleTarget(rec), who))
	c.JSON(http.StatusCreated, rec)
}

func UpdateSale(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var before models.Sale
	if err := database.DB.First(&before, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateSale(&before)

	if !report.CanEdit(before.CreatedBy, before.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다"})
		return
	}

	var form saleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	after := before
	form.apply(&after)
	after.RegistrationDate = before.RegistrationDate // 등록일은 생성 후 불변
	translateSale(&after)

	changes := report.Diff(before, after, saleFields)

	if err := database.DB.Save(&after).Error; err != nil {
		log.Printf("failed to update sale %s: %v", before.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(saleTarget(after), changes, who))
	c.JSON(http.StatusOK, after)
}

func MoveSaleStatus(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Sale
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateSale(&rec)

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
		return codes.Sub(models.GroupSaleStatus, name)
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
		log.Printf("failed to move sale %s status: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(
		saleTarget(rec),
		[]report.Change{report.StatusChange(oldName, form.Status)},
		who,
	))
	c.JSON(http.StatusOK, gin.H{"code": rec.Code, "before": oldName, "after": form.Status})
}

func DeleteSale(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Sale
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다"})
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.Printf("failed to delete sale %s: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	database.CreateChangeLog(changelog.DeleteEntry(saleTarget(rec), who))
	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

func DeleteSales(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var form deleteForm
	if err := c.ShouldBindJSON(&form); err != nil || len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var records []models.Sale
	if err := database.DB.Find(&records, form.IDs).Error; err != nil {
		log.Printf("failed to fetch sales for delete: %v", err)
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

	if err := database.DB.Delete(&models.Sale{}, form.IDs).Error; err != nil {
		log.Printf("failed to delete sales: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	entries := make([]models.ChangeLog, 0, len(records))
	for _, rec := range records {
		entries = append(entries, changelog.DeleteEntry(saleTarget(rec), who))
	}
	database.CreateChangeLogs(entries)
	c.JSON(http.StatusOK, gin.H{"deleted": len(records)})
}
