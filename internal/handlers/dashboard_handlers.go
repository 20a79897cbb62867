package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DashboardStats is the KPI block for the admin dashboard.
type DashboardStats struct {
	Categories    int `json:"categories"`
	Products      int `json:"products"`
	NewCategories int `json:"newCategories"`
	NewProducts   int `json:"newProducts"`
}

// GetDashboardStats handles GET /admin/dashboard/stats.
//
// The four counts run concurrently and are awaited jointly: if any one
// fails the whole response fails and the console shows zeros, never a
// partially populated stat block.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats DashboardStats
	var g errgroup.Group

	g.Go(func() error {
		var err error
		stats.Categories, err = h.Categories.Count()
		return err
	})
	g.Go(func() error {
		var err error
		stats.Products, err = h.Products.Count()
		return err
	})
	g.Go(func() error {
		var err error
		stats.NewCategories, err = h.Categories.CountCreatedSince(firstOfMonth)
		return err
	})
	g.Go(func() error {
		var err error
		stats.NewProducts, err = h.Products.CountCreatedSince(firstOfMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch dashboard stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
