package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

type InvoiceHandler struct {
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceHandler(invoiceRepo repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{invoiceRepo: invoiceRepo}
}

// GetInvoices godoc
// @Summary List invoices or fetch one by id
// @Tags Invoices
// @Produce json
// @Param id query string false "Invoice ID"
// @Success 200 {array} models.Invoice
// @Failure 404 {object} object{error=string}
// @Router /invoices [get]
func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID format"})
		}
		invoice, err := h.invoiceRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find invoice %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch invoice"})
		}
		if invoice == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return c.Status(fiber.StatusOK).JSON(invoice)
	}

	invoices, err := h.invoiceRepo.FindAll(ctx)
	if err != nil {
		log.Printf("ERROR: list invoices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch invoices"})
	}
	return c.Status(fiber.StatusOK).JSON(invoices)
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param payload body models.InvoiceCreatePayload true "Invoice"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var payload models.InvoiceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	status := payload.Status
	if status == "" {
		status = "pending"
	}

	totalAmount := payload.TotalAmount
	if totalAmount == 0 {
		totalAmount = payload.Amount + payload.GSTAmount
	}

	invoice := &models.Invoice{
		Company:       payload.Company,
		CompanyID:     payload.CompanyID,
		Project:       payload.Project,
		Client:        payload.Client,
		Amount:        payload.Amount,
		GSTAmount:     payload.GSTAmount,
		TotalAmount:   totalAmount,
		HasGST:        payload.HasGST,
		GSTPercentage: payload.GSTPercentage,
		Status:        status,
		DueDate:       payload.DueDate,
		IssuedDate:    payload.IssuedDate,
		ClientImage:   payload.ClientImage,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.invoiceRepo.Create(ctx, invoice); err != nil {
		log.Printf("ERROR: create invoice: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invoice"})
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id query string true "Invoice ID"
// @Param payload body models.InvoiceUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /invoices [put]
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID format"})
	}

	var payload models.InvoiceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := bson.M{}
	if payload.Company != "" {
		update["company"] = payload.Company
	}
	if payload.CompanyID != "" {
		update["companyId"] = payload.CompanyID
	}
	if payload.Project != "" {
		update["project"] = payload.Project
	}
	if payload.Client != "" {
		update["client"] = payload.Client
	}
	if payload.Amount != nil {
		update["amount"] = *payload.Amount
	}
	if payload.GSTAmount != nil {
		update["gstAmount"] = *payload.GSTAmount
	}
	if payload.TotalAmount != nil {
		update["totalAmount"] = *payload.TotalAmount
	}
	if payload.HasGST != nil {
		update["hasGST"] = *payload.HasGST
	}
	if payload.GSTPercentage != nil {
		update["gstPercentage"] = *payload.GSTPercentage
	}
	if payload.Status != "" {
		update["status"] = payload.Status
	}
	if payload.DueDate != "" {
		update["dueDate"] = payload.DueDate
	}
	if payload.IssuedDate != "" {
		update["issuedDate"] = payload.IssuedDate
	}
	if payload.ClientImage != "" {
		update["clientImage"] = payload.ClientImage
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.invoiceRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update invoice %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Invoice updated successfully"})
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Tags Invoices
// @Produce json
// @Param id query string true "Invoice ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /invoices [delete]
func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.invoiceRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete invoice %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete invoice"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Invoice deleted successfully"})
}
