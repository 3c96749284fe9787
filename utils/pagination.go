package utils

import (
	"encoding/json"
	"math"

	"github.com/gin-gonic/gin"
)

// PaginationHeader is the name of the response header carrying page metadata.
const PaginationHeader = "X-Pagination"

// PaginationMeta describes one page of a list response. The field names are
// part of the public contract, clients parse them from the X-Pagination header.
type PaginationMeta struct {
	TotalCount  int64 `json:"TotalCount"`
	PageSize    int   `json:"PageSize"`
	CurrentPage int   `json:"CurrentPage"`
	TotalPages  int   `json:"TotalPages"`
}

func NewPaginationMeta(totalCount int64, pageNumber, pageSize int) PaginationMeta {
	return PaginationMeta{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: pageNumber,
		TotalPages:  int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}
}

// SetPaginationHeader serializes the metadata into the X-Pagination header.
func SetPaginationHeader(c *gin.Context, meta PaginationMeta) {
	b, err := json.Marshal(meta)
	if err != nil {
		ErrorLogger.Printf("Failed to marshal pagination metadata: %v", err)
		return
	}
	c.Header(PaginationHeader, string(b))
}
