package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"garment-app/models"
	"garment-app/repositories"
	"garment-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(DB *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: DB}
}

type ReceiptInput struct {
	JobworkNo string                `json:"jobwork_no" validate:"required"`
	Remarks   string                `json:"remarks"`
	Items     []services.ReceiptRow `json:"items" validate:"required,min=1,dive"`
}

type RaiseRequestInput struct {
	JobworkNo      string                `json:"jobwork_no" validate:"required"`
	SystemComments string                `json:"system_comments" validate:"required"`
	Items          []services.ReceiptRow `json:"items" validate:"required,min=1,dive"`
}

func (c *ReceiptController) newReconciler() *services.ReconcileService {
	return services.NewReconcileService(c.DB, services.NewLifecycleService(c.DB), services.NewNotifyService())
}

// receiptError maps reconciliation outcomes onto HTTP responses. The
// short-delivery case is not a plain failure: the caller is told to raise
// a workflow request instead.
func receiptError(ctx *fiber.Ctx, err error) error {
	var rowErr *services.RowError
	switch {
	case errors.As(err, &rowErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   rowErr.Error(),
			"row":     rowErr.Row,
			"field":   rowErr.Field,
		})
	case errors.Is(err, services.ErrShortDelivery):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":           false,
			"error":             err.Error(),
			"can_raise_request": true,
		})
	case errors.Is(err, services.ErrQuantityExceeded):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrJobworkAlreadyClosed):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Jobwork not found"})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
}

func (c *ReceiptController) SubmitReceipt(ctx *fiber.Ctx) error {
	var payload ReceiptInput

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

	receipt, err := c.newReconciler().Submit(payload.JobworkNo, payload.Items, payload.Remarks, userID)
	if err != nil {
		return receiptError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Receipt reconciled, jobwork awaiting close",
		"data": fiber.Map{
			"receipt_id":     receipt.ID,
			"total_quantity": receipt.TotalQuantity,
		},
	})
}

func (c *ReceiptController) RaiseRequest(ctx *fiber.Ctx) error {
	var payload RaiseRequestInput

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

	request, err := c.newReconciler().RaiseRequest(payload.JobworkNo, payload.Items, payload.SystemComments, userID)
	if err != nil {
		return receiptError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Workflow request raised",
		"data": fiber.Map{
			"request_no":     request.RequestNo,
			"request_status": request.RequestStatus,
		},
	})
}

func (c *ReceiptController) GetReceiptsByJobwork(ctx *fiber.Ctx) error {
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

	receipts, err := jobworkRepo.GetReceipts(jobwork.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": receipts})
}

// parseReceiptRow converts the numeric cells of one upload row. Every
// malformed cell is an error: cost and wage are money columns and must
// not silently degrade to zero.
func parseReceiptRow(row []string) (services.ReceiptRow, error) {
	quantities := make([]int, 0, 5)
	for _, col := range []int{1, 2, 5, 6, 7} {
		value, err := strconv.Atoi(strings.TrimSpace(row[col]))
		if err != nil {
			return services.ReceiptRow{}, fmt.Errorf("invalid quantity in column %d", col+1)
		}
		quantities = append(quantities, value)
	}

	purchaseCost, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return services.ReceiptRow{}, fmt.Errorf("invalid purchase cost in column 4")
	}
	wage, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil {
		return services.ReceiptRow{}, fmt.Errorf("invalid wage in column 5")
	}

	return services.ReceiptRow{
		ReturnedQuantity:   quantities[0],
		PurchasedQuantity:  quantities[1],
		PurchaseCost:       purchaseCost,
		Wage:               wage,
		SupplierDamage:     quantities[2],
		RepairableDamage:   quantities[3],
		UnrepairableDamage: quantities[4],
	}, nil
}

// UploadReceiptFromExcel bulk-enters receipt rows from an Excel sheet and
// feeds them through the same reconciliation path as manual entry.
// Expected columns: ItemCode, Returned, Purchased, PurchaseCost, Wage,
// SupplierDamage, RepairableDamage, UnrepairableDamage.
func (c *ReceiptController) UploadReceiptFromExcel(ctx *fiber.Ctx) error {
	jobworkNo := ctx.FormValue("jobwork_no")
	if jobworkNo == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jobwork_no is required"})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No file uploaded",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	var receiptRows []services.ReceiptRow

	// Process each row (skip header)
	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 8 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Row %d: Insufficient columns (expected 8)", rowNum),
			})
		}

		itemCode := strings.TrimSpace(row[0])
		var item models.Item
		if err := c.DB.First(&item, "item_code = ?", itemCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"error":   fmt.Sprintf("Row %d: Item %s not found", rowNum, itemCode),
				})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		parsed, err := parseReceiptRow(row)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Row %d: %s", rowNum, err.Error()),
			})
		}
		parsed.ItemID = int(item.ID)
		parsed.ItemCode = item.ItemCode
		receiptRows = append(receiptRows, parsed)
	}

	userID := int(ctx.Locals("userID").(float64))

	receipt, err := c.newReconciler().Submit(jobworkNo, receiptRows, "uploaded from excel", userID)
	if err != nil {
		return receiptError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Receipt uploaded and reconciled",
		"data": fiber.Map{
			"receipt_id":     receipt.ID,
			"total_quantity": receipt.TotalQuantity,
			"rows":           len(receiptRows),
		},
	})
}
