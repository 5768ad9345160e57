package controllers

import (
	"errors"

	"garment-app/repositories"
	"garment-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkflowController struct {
	DB *gorm.DB
}

func NewWorkflowController(DB *gorm.DB) *WorkflowController {
	return &WorkflowController{DB: DB}
}

func (c *WorkflowController) GetAllRequests(ctx *fiber.Ctx) error {
	status := ctx.Query("status")

	requests, err := repositories.NewWorkflowRepository(c.DB).ListByStatus(status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": requests})
}

func (c *WorkflowController) GetRequestByNo(ctx *fiber.Ctx) error {
	requestNo := ctx.Params("request_no")

	request, err := repositories.NewWorkflowRepository(c.DB).GetByRequestNo(requestNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workflow request not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": request})
}

type ResolveInput struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Remarks  string `json:"remarks"`
}

func (c *WorkflowController) ResolveRequest(ctx *fiber.Ctx) error {
	requestNo := ctx.Params("request_no")

	var payload ResolveInput
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	notifier := services.NewNotifyService()
	reconciler := services.NewReconcileService(c.DB, services.NewLifecycleService(c.DB), notifier)
	workflow := services.NewWorkflowService(c.DB, reconciler, notifier)

	request, err := workflow.Resolve(requestNo, payload.Decision, payload.Remarks, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyResolved):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrJobworkAlreadyClosed):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workflow request not found"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Workflow request " + request.RequestStatus,
		"data":    request,
	})
}
