package handlers

import (
	"net/http"

	"opsboard/internal/codes"

	"github.com/gin-gonic/gin"
)

// ListCodes 는 한 그룹의 마스터 코드를 sort_order 순으로 돌려준다.
// 드롭다운/필터 옵션 구성용.
func ListCodes(c *gin.Context) {
	group := c.Param("group")
	list := codes.Group(group)
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "알 수 없는 코드 그룹입니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "codes": list})
}
