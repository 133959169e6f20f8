package middleware

import (
	"opsboard/internal/database"
	"opsboard/internal/models"
	"opsboard/internal/report"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// WithPermissions 는 역할 × 페이지 권한을 풀어서 핸들러에 넘긴다.
// permission 행이 없는 조합은 전부 불허로 해석된다.
func WithPermissions(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, _ := sess.Get("role").(string)

		var caps report.Capabilities
		var perm models.Permission
		err := database.DB.
			Where("role = ? AND page = ?", roleStr, page).
			First(&perm).Error
		if err == nil {
			caps = report.Capabilities{
				CanViewCategory: perm.CanViewCategory,
				CanReadData:     perm.CanReadData,
				CanCreateData:   perm.CanCreateData,
				CanEditOwn:      perm.CanEditOwn,
				CanEditOthers:   perm.CanEditOthers,
			}
		}

		c.Set("Page", page)
		c.Set("Caps", caps)
		c.Next()
	}
}

// Caps 는 WithPermissions 가 넣어둔 권한을 꺼낸다.
func Caps(c *gin.Context) report.Capabilities {
	if v, ok := c.Get("Caps"); ok {
		if caps, ok := v.(report.Capabilities); ok {
			return caps
		}
	}
	return report.Capabilities{}
}
