package middleware

import (
	"opsboard/internal/database"
	"opsboard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser 는 InjectUser 가 넣어둔 사용자 정보를 꺼낸다.
func CurrentUser(c *gin.Context) (models.User, bool) {
	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			return u, true
		}
	}
	return models.User{}, false
}
