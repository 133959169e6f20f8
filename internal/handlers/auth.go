package handlers

import (
	"log"
	"net/http"
	"strings"

	"opsboard/internal/database"
	"opsboard/internal/middleware"
	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Role     string `json:"role"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	form.Name = strings.TrimSpace(form.Name)
	if len(form.Username) < 3 || len(form.Password) < 6 || form.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "아이디/비밀번호/이름을 확인해 주세요"})
		return
	}

	role := models.UserRole(form.Role)

	// 셀프 가입은 member / viewer 만. 관리자 계정은 코드/환경변수로만 만든다.
	switch role {
	case models.RoleMember, models.RoleViewer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "허용되지 않는 역할입니다"})
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", form.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미 존재하는 사용자입니다"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "가입 처리에 실패했습니다"})
		return
	}

	user := models.User{
		Username:     form.Username,
		PasswordHash: string(hash),
		Name:         form.Name,
		Team:         form.Team,
		Position:     form.Position,
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("failed to create user %s: %v", form.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "가입 처리에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "아이디 또는 비밀번호가 올바르지 않습니다"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "아이디 또는 비밀번호가 올바르지 않습니다"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.JSON(http.StatusOK, user)
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me 는 현재 사용자와 페이지별 권한을 함께 돌려준다.
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다"})
		return
	}

	var perms []models.Permission
	if err := database.DB.Where("role = ?", user.Role).Find(&perms).Error; err != nil {
		log.Printf("failed to load permissions for %s: %v", user.Role, err)
	}

	capsByPage := make(map[string]report.Capabilities, len(perms))
	for _, p := range perms {
		capsByPage[p.Page] = report.Capabilities{
			CanViewCategory: p.CanViewCategory,
			CanReadData:     p.CanReadData,
			CanCreateData:   p.CanCreateData,
			CanEditOwn:      p.CanEditOwn,
			CanEditOthers:   p.CanEditOthers,
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "permissions": capsByPage})
}

// ListUsers 는 관리자용 계정 목록이다.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("username").Find(&users).Error; err != nil {
		log.Printf("failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "사용자 목록을 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}
