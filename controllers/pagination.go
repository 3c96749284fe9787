package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadPageParams = errors.New("page number and page size must be greater than 0")

// parsePagination reads pageNumber/pageSize query params (both default sanely,
// both must be >= 1).
func parsePagination(c *gin.Context) (int, int, error) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		return 0, 0, errBadPageParams
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		return 0, 0, errBadPageParams
	}
	if pageNumber < 1 || pageSize < 1 {
		return 0, 0, errBadPageParams
	}
	return pageNumber, pageSize, nil
}
