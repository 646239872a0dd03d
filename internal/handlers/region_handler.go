package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/httpresp"
	"github.com/leafload/leafload-api/internal/models"
)

type RegionHandler struct {
	db *gorm.DB
}

func NewRegionHandler(db *gorm.DB) *RegionHandler {
	return &RegionHandler{db: db}
}

// List returns all delivery regions ordered by name.
func (h *RegionHandler) List(c *gin.Context) {
	var regions []models.Region
	if err := h.db.Order("name ASC").Find(&regions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_regions", "Could not list regions.")
		return
	}
	httpresp.OK(c, regions)
}
