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
	taskPage     = "task"
	taskLabel    = "업무"
	taskLocation = "업무대장"
	taskPrefix   = "TSK"
)

func translateTask(r *models.Task) {
	r.StatusName = codes.Name(models.GroupTaskStatus, r.StatusCode)
}

// 업무는 코드화된 카테고리가 없어 부서(자유 텍스트)가 카테고리 차원이 된다.
func taskRow(r models.Task) report.Row {
	return report.Row{
		ID:       r.ID,
		Code:     r.Code,
		Title:    r.Title,
		Status:   r.StatusName,
		Team:     r.Team,
		Assignee: r.Assignee,
		Category: r.Department,
		Date:     r.StartDate,
		Creator:  r.CreatedBy,
	}
}

func taskTarget(r models.Task) changelog.Target {
	return changelog.Target{
		Page:        taskPage,
		ModuleLabel: taskLabel,
		Code:        r.Code,
		Title:       r.Title,
		Location:    taskLocation,
	}
}

var taskFields = []report.Field[models.Task]{
	{Name: "title", Label: "업무명", Value: func(r models.Task) string { return r.Title }},
	{Name: "status", Label: "상태", Value: func(r models.Task) string { return r.StatusName }},
	{Name: "department", Label: "부서", Value: func(r models.Task) string { return r.Department }},
	{Name: "team", Label: "팀", Value: func(r models.Task) string { return r.Team }},
	{Name: "assignee", Label: "담당자", Value: func(r models.Task) string { return r.Assignee }},
	{Name: "startDate", Label: "시작일", Value: func(r models.Task) string { return r.StartDate }},
	{Name: "completedDate", Label: "완료일", Value: func(r models.Task) string { return r.CompletedDate }},
	{Name: "workContent", Label: "업무내용", Value: func(r models.Task) string { return r.WorkContent }},
}

type taskForm struct {
	Title         string `json:"title" binding:"required"`
	StatusCode    string `json:"statusCode"`
	Department    string `json:"department"`
	Team          string `json:"team"`
	Assignee      string `json:"assignee"`
	StartDate     string `json:"startDate"`
	CompletedDate string `json:"completedDate"`
	WorkContent   string `json:"workContent"`
}

func (f taskForm) apply(r *models.Task) {
	r.Title = f.Title
	r.StatusCode = f.StatusCode
	r.Department = f.Department
	r.Team = f.Team
	r.Assignee = f.Assignee
	r.StartDate = f.StartDate
	r.CompletedDate = f.CompletedDate
	r.WorkContent = f.WorkContent
}

func ListTasks(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateTask)
	if !ok {
		return
	}
	respondList(c, records, taskRow)
}

func TaskDashboard(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateTask)
	if !ok {
		return
	}
	respondDashboard(c, records, taskRow)
}

func TaskKanban(c *gin.Context) {
	if !requireRead(c) {
		return
	}
	records, ok := fetchAll(c, translateTask)
	if !ok {
		return
	}
	respondKanban(c, records, taskRow)
}

func TaskChangeLog(c *gin.Context) {
	respondChangeLog(c, taskPage)
}

func CreateTask(c *gin.Context) {
	if !requireCreate(c) {
		return
	}
	who, ok := actor(c)
	if !ok {
		return
	}

	var form taskForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var rec models.Task
	form.apply(&rec)
	if rec.StatusCode == "" {
		rec.StatusCode = "SUB001"
	}
	rec.Code = newCode[models.Task](taskPrefix)
	rec.CreatedBy = who.Name

	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "등록에 실패했습니다"})
		return
	}

	translateTask(&rec)
	database.CreateChangeLog(changelog.AddEntry(taskTarget(rec), who))
	c.JSON(http.StatusCreated, rec)
}

func UpdateTask(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var before models.Task
	if err := database.DB.First(&before, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateTask(&before)

	if !report.CanEdit(before.CreatedBy, before.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다"})
		return
	}

	var form taskForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	after := before
	form.apply(&after)
	translateTask(&after)

	changes := report.Diff(before, after, taskFields)

	if err := database.DB.Save(&after).Error; err != nil {
		log.Printf("failed to update task %s: %v", before.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(taskTarget(after), changes, who))
	c.JSON(http.StatusOK, after)
}

func MoveTaskStatus(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Task
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}
	translateTask(&rec)

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
		return codes.Sub(models.GroupTaskStatus, name)
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
		log.Printf("failed to move task %s status: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다"})
		return
	}

	database.CreateChangeLogs(changelog.EditEntries(
		taskTarget(rec),
		[]report.Change{report.StatusChange(oldName, form.Status)},
		who,
	))
	c.JSON(http.StatusOK, gin.H{"code": rec.Code, "before": oldName, "after": form.Status})
}

func DeleteTask(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var rec models.Task
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "기록을 찾을 수 없습니다"})
		return
	}

	if !report.CanEdit(rec.CreatedBy, rec.Assignee, who.Name, middleware.Caps(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다"})
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.Printf("failed to delete task %s: %v", rec.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	database.CreateChangeLog(changelog.DeleteEntry(taskTarget(rec), who))
	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

func DeleteTasks(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var form deleteForm
	if err := c.ShouldBindJSON(&form); err != nil || len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var records []models.Task
	if err := database.DB.Find(&records, form.IDs).Error; err != nil {
		log.Printf("failed to fetch tasks for delete: %v", err)
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

	if err := database.DB.Delete(&models.Task{}, form.IDs).Error; err != nil {
		log.Printf("failed to delete tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "삭제에 실패했습니다"})
		return
	}

	entries := make([]models.ChangeLog, 0, len(records))
	for _, rec := range records {
		entries = append(entries, changelog.DeleteEntry(taskTarget(rec), who))
	}
	database.CreateChangeLogs(entries)
	c.JSON(http.StatusOK, gin.H{"deleted": len(records)})
}
