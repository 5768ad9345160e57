package controllers

import (
	"errors"

	"garment-app/controllers/helpers"
	"garment-app/models"
	"garment-app/repositories"
	"garment-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(DB *gorm.DB) *BatchController {
	return &BatchController{DB: DB}
}

type BatchItemInput struct {
	ItemID   int    `json:"item_id" validate:"required"`
	ItemCode string `json:"item_code"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Remarks  string `json:"remarks"`
}

type BatchInput struct {
	CategoryCode string           `json:"category_code" validate:"required"`
	Remarks      string           `json:"remarks"`
	Items        []BatchItemInput `json:"items" validate:"required,min=1,dive"`
}

func (c *BatchController) CreateBatch(ctx *fiber.Ctx) error {
	var payload BatchInput

	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	var category models.Category
	if err := c.DB.First(&category, "category_code = ?", payload.CategoryCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	batchRepo := repositories.NewBatchRepository(tx)

	serialCode, err := batchRepo.GenerateSerialCode(category.CategoryCode)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate serial code",
			"error":   err.Error(),
		})
	}

	initialQuantity := 0
	for _, item := range payload.Items {
		initialQuantity += item.Quantity
	}

	batch := models.Batch{
		SerialCode:      serialCode,
		CategoryID:      int(category.ID),
		CategoryCode:    category.CategoryCode,
		InitialQuantity: initialQuantity,
		Status:          models.BatchStatusCreated,
		Remarks:         payload.Remarks,
		CreatedBy:       userID,
		UpdatedBy:       userID,
	}

	if err := tx.Create(&batch).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert batch",
			"error":   err.Error(),
		})
	}

	for _, item := range payload.Items {
		var product models.Item
		if err := tx.First(&product, "id = ?", item.ItemID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		batchItem := models.BatchItem{
			BatchId:    batch.ID,
			SerialCode: batch.SerialCode,
			ItemId:     int(product.ID),
			ItemCode:   product.ItemCode,
			Quantity:   item.Quantity,
			Remarks:    item.Remarks,
			CreatedBy:  userID,
			UpdatedBy:  userID,
		}
		if err := tx.Create(&batchItem).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert batch item",
				"error":   err.Error(),
			})
		}
	}

	if err := helpers.InsertTransactionHistory(tx, batch.SerialCode, batch.Status, "batch", "batch created", userID); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to commit transaction",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Batch created successfully",
		"data": fiber.Map{
			"serial_code":      batch.SerialCode,
			"initial_quantity": batch.InitialQuantity,
		},
	})
}

func (c *BatchController) GetAllBatches(ctx *fiber.Ctx) error {
	batchRepo := repositories.NewBatchRepository(c.DB)
	result, err := batchRepo.GetAllBatches()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

func (c *BatchController) GetBatchBySerialCode(ctx *fiber.Ctx) error {
	serialCode := ctx.Params("serial_code")

	batchRepo := repositories.NewBatchRepository(c.DB)
	batch, err := batchRepo.GetBySerialCode(serialCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := batchRepo.GetItems(batch.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ledger, eligible, err := services.NewEligibilityService(c.DB).Evaluate(batch)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	closed := fiber.Map{}
	for _, jobworkType := range models.JobworkTypes {
		closed[jobworkType] = services.IsClosed(ledger, jobworkType)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"batch":          batch,
			"items":          items,
			"ledger":         ledger,
			"eligible_types": eligible,
			"closed_types":   closed,
		},
	})
}

func (c *BatchController) DiscardBatch(ctx *fiber.Ctx) error {
	serialCode := ctx.Params("serial_code")
	userID := int(ctx.Locals("userID").(float64))

	batchRepo := repositories.NewBatchRepository(c.DB)
	batch, err := batchRepo.GetBySerialCode(serialCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if batch.IsTerminal() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Batch is already " + batch.Status})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := repositories.NewBatchRepository(tx).UpdateStatus(batch.ID, models.BatchStatusDiscarded, userID); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := helpers.InsertTransactionHistory(tx, batch.SerialCode, models.BatchStatusDiscarded, "batch", "batch discarded", userID); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch discarded"})
}
