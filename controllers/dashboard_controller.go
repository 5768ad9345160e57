package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

type statusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	var batchCounts []statusCount
	sqlBatches := `SELECT status, COUNT(*) AS total FROM batches
	WHERE deleted_at IS NULL GROUP BY status`
	if err := c.DB.Raw(sqlBatches).Scan(&batchCounts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var jobworkCounts []statusCount
	sqlJobworks := `SELECT status, COUNT(*) AS total FROM jobworks
	WHERE deleted_at IS NULL GROUP BY status`
	if err := c.DB.Raw(sqlJobworks).Scan(&jobworkCounts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var requestCounts []statusCount
	sqlRequests := `SELECT request_status AS status, COUNT(*) AS total FROM workflow_requests
	WHERE deleted_at IS NULL GROUP BY request_status`
	if err := c.DB.Raw(sqlRequests).Scan(&requestCounts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"batches":           batchCounts,
			"jobworks":          jobworkCounts,
			"workflow_requests": requestCounts,
		},
	})
}
