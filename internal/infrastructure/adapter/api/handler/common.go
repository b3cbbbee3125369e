package handler

import (
	"strconv"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/gin-gonic/gin"
)

// queryLimit reads the optional limit query parameter. 0 means the use
// case default.
func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errs.Invalidf("limit must be a non-negative integer")
	}
	return limit, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errs.Invalidf("invalid request body: %v", err)
	}
	return nil
}
