package controllers

import (
	"garment-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MasterController serves the read-only master-data lookups that feed the
// batch/jobwork/receipt forms. Maintenance of these masters lives in a
// separate back office.
type MasterController struct {
	DB *gorm.DB
}

func NewMasterController(DB *gorm.DB) *MasterController {
	return &MasterController{DB: DB}
}

func (c *MasterController) GetAllCategories(ctx *fiber.Ctx) error {
	var categories []models.Category
	if err := c.DB.Preload("SubCategories").Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": categories})
}

func (c *MasterController) GetAllItems(ctx *fiber.Ctx) error {
	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

func (c *MasterController) GetAllEmployees(ctx *fiber.Ctx) error {
	var employees []models.Employee
	if err := c.DB.Preload("Skills").Where("is_active = ?", true).Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": employees})
}

func (c *MasterController) GetAllSkills(ctx *fiber.Ctx) error {
	var skills []models.Skill
	if err := c.DB.Find(&skills).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": skills})
}

func (c *MasterController) GetAllSuppliers(ctx *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := c.DB.Find(&suppliers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": suppliers})
}

func (c *MasterController) GetAllTransports(ctx *fiber.Ctx) error {
	var transports []models.Transport
	if err := c.DB.Find(&transports).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": transports})
}
