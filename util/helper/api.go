package helper_util

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GetTimeRangeParams reads optional from/to RFC3339 query parameters,
// defaulting to the last 24 hours.
func GetTimeRangeParams(c *gin.Context) (from time.Time, to time.Time, err error) {
	now := time.Now().UTC()
	from = now.Add(-24 * time.Hour)
	to = now

	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}
