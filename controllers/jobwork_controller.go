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

type JobworkController struct {
	DB *gorm.DB
}

func NewJobworkController(DB *gorm.DB) *JobworkController {
	return &JobworkController{DB: DB}
}

type JobworkInput struct {
	BatchSerialCode  string `json:"batch_serial_code" validate:"required"`
	JobworkType      string `json:"jobwork_type" validate:"required,oneof=cutting stitching packaging"`
	AssignedQuantity int    `json:"assigned_quantity" validate:"required,min=1"`
	EmployeeID       int    `json:"employee_id" validate:"required"`
	Remarks          string `json:"remarks"`
}

func (c *JobworkController) CreateJobwork(ctx *fiber.Ctx) error {
	var payload JobworkInput

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

	var employee models.Employee
	if err := c.DB.First(&employee, "id = ?", payload.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	batch, err := repositories.NewBatchRepository(tx).GetBySerialCodeForUpdate(payload.BatchSerialCode)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Eligibility and availability checked inside the transaction, against
	// the authoritative ledger.
	ledger, err := repositories.NewLedgerRepository(tx).Snapshot(batch)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !services.IsEligible(ledger, payload.JobworkType) {
		tx.Rollback()
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   services.ErrIneligibleJobworkType.Error(),
		})
	}

	available := services.AvailableQuantity(ledger, payload.JobworkType)
	if payload.AssignedQuantity > available {
		tx.Rollback()
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":   false,
			"error":     services.ErrQuantityExceedsAvailable.Error(),
			"available": available,
		})
	}

	jobworkRepo := repositories.NewJobworkRepository(tx)
	jobworkNo, err := jobworkRepo.GenerateJobworkNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate jobwork no",
			"error":   err.Error(),
		})
	}

	jobwork := models.Jobwork{
		JobworkNo:        jobworkNo,
		BatchId:          batch.ID,
		BatchSerialCode:  batch.SerialCode,
		JobworkType:      payload.JobworkType,
		AssignedQuantity: payload.AssignedQuantity,
		Status:           models.JobworkStatusInProgress,
		EmployeeId:       int(employee.ID),
		EmployeeName:     employee.EmployeeName,
		Remarks:          payload.Remarks,
		CreatedBy:        userID,
		UpdatedBy:        userID,
	}

	if err := tx.Create(&jobwork).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert jobwork",
			"error":   err.Error(),
		})
	}

	if batch.Status == models.BatchStatusCreated {
		if err := repositories.NewBatchRepository(tx).UpdateStatus(batch.ID, models.BatchStatusWip, userID); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := helpers.InsertTransactionHistory(tx, jobwork.JobworkNo, jobwork.Status, "jobwork",
		"created against batch "+batch.SerialCode, userID); err != nil {
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
		"message": "Jobwork created successfully",
		"data": fiber.Map{
			"jobwork_no": jobwork.JobworkNo,
		},
	})
}

func (c *JobworkController) GetAllJobworks(ctx *fiber.Ctx) error {
	batchSerialCode := ctx.Query("batch")

	jobworkRepo := repositories.NewJobworkRepository(c.DB)

	if batchSerialCode != "" {
		batch, err := repositories.NewBatchRepository(c.DB).GetBySerialCode(batchSerialCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		jobworks, err := jobworkRepo.ListByBatch(batch.ID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": jobworks})
	}

	result, err := jobworkRepo.GetAllJobworks()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

func (c *JobworkController) GetJobworkByNo(ctx *fiber.Ctx) error {
	jobworkNo := ctx.Params("jobwork_no")

	if !repositories.ValidateJobworkNo(jobworkNo) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid jobwork number format"})
	}

	jobworkRepo := repositories.NewJobworkRepository(c.DB)
	jobwork, err := jobworkRepo.GetByNo(jobworkNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jobwork not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	received, err := repositories.NewLedgerRepository(c.DB).TotalReceived(jobwork.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	receipts, err := jobworkRepo.GetReceipts(jobwork.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"jobwork":           jobwork,
			"received_quantity": received,
			"pending_quantity":  jobwork.AssignedQuantity - received,
			"receipts":          receipts,
		},
	})
}

type ReassignInput struct {
	EmployeeID int    `json:"employee_id" validate:"required"`
	Remarks    string `json:"remarks"`
}

func (c *JobworkController) ReassignJobwork(ctx *fiber.Ctx) error {
	jobworkNo := ctx.Params("jobwork_no")

	var payload ReassignInput
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	jobwork, err := repositories.NewJobworkRepository(c.DB).GetByNo(jobworkNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jobwork not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var employee models.Employee
	if err := c.DB.First(&employee, "id = ?", payload.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lifecycle := services.NewLifecycleService(c.DB)
	if err := lifecycle.Reassign(jobwork, &employee, payload.Remarks, userID); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Jobwork reassigned to " + employee.EmployeeName,
	})
}

func (c *JobworkController) CloseJobwork(ctx *fiber.Ctx) error {
	jobworkNo := ctx.Params("jobwork_no")
	userID := int(ctx.Locals("userID").(float64))

	jobwork, err := repositories.NewJobworkRepository(c.DB).GetByNo(jobworkNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jobwork not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lifecycle := services.NewLifecycleService(c.DB)
	if err := lifecycle.Close(jobwork, userID); err != nil {
		if errors.Is(err, services.ErrNotReadyToClose) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Jobwork closed"})
}

func (c *JobworkController) ReopenJobwork(ctx *fiber.Ctx) error {
	jobworkNo := ctx.Params("jobwork_no")
	userID := int(ctx.Locals("userID").(float64))

	jobwork, err := repositories.NewJobworkRepository(c.DB).GetByNo(jobworkNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jobwork not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lifecycle := services.NewLifecycleService(c.DB)
	if err := lifecycle.Reopen(jobwork, userID); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Jobwork reopened"})
}
