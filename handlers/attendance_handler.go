package handlers

import (
	"context"
	"encoding/base64"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
	"office-management-backend/pkg/attendance"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

// Arrivals after this time are recorded as late.
const (
	lateHour   = 10
	lateMinute = 15
)

const defaultPageLimit = 100

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendanceRepo: attendanceRepo}
}

// GetAttendance godoc
// @Summary List attendance records (paginated) or fetch one by id
// @Tags Attendance
// @Produce json
// @Param id query string false "Record ID"
// @Param limit query int false "Page size (default 100)"
// @Param skip query int false "Offset"
// @Success 200 {object} models.AttendancePage
// @Failure 404 {object} object{error=string}
// @Router /attendance [get]
func (h *AttendanceHandler) GetAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance ID format"})
		}
		record, err := h.attendanceRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find attendance %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance record"})
		}
		if record == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(fiber.StatusOK).JSON(record)
	}

	limit := int64(c.QueryInt("limit", defaultPageLimit))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	skip := int64(c.QueryInt("skip", 0))
	if skip < 0 {
		skip = 0
	}

	page, err := h.attendanceRepo.FindPage(ctx, limit, skip)
	if err != nil {
		log.Printf("ERROR: list attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CreateAttendance godoc
// @Summary Create an attendance record directly
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body models.AttendanceCreatePayload true "Record"
// @Success 201 {object} models.AttendanceRecord
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /attendance [post]
func (h *AttendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	date := payload.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	status := payload.Status
	if status == "" {
		status = attendance.StatusPresent
	}

	record := &models.AttendanceRecord{
		EmployeeID:   payload.EmployeeID,
		EmployeeName: payload.EmployeeName,
		Department:   payload.Department,
		Date:         date,
		CheckInTime:  payload.CheckInTime,
		CheckOutTime: payload.CheckOutTime,
		Status:       attendance.Normalize(status),
		TotalHours:   payload.TotalHours,
		Hours:        payload.Hours,
		Location:     payload.Location,
		Photo:        payload.Photo,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.attendanceRepo.Create(ctx, record); err != nil {
		log.Printf("ERROR: create attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create attendance record"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateAttendance godoc
// @Summary Update an attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id query string true "Record ID"
// @Param payload body models.AttendanceUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /attendance [put]
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance ID format"})
	}

	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := bson.M{}
	if payload.CheckInTime != nil {
		update["checkInTime"] = *payload.CheckInTime
	}
	if payload.CheckOutTime != nil {
		update["checkOutTime"] = *payload.CheckOutTime
	}
	if payload.Status != "" {
		update["status"] = attendance.Normalize(payload.Status)
	}
	if payload.TotalHours != nil {
		update["totalHours"] = *payload.TotalHours
	}
	if payload.Hours != "" {
		update["hours"] = payload.Hours
	}
	if payload.Location != "" {
		update["location"] = payload.Location
	}
	if payload.Photo != "" {
		update["photo"] = payload.Photo
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.attendanceRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update attendance %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update attendance record"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Attendance record updated successfully"})
}

// DeleteAttendance godoc
// @Summary Delete an attendance record
// @Tags Attendance
// @Produce json
// @Param id query string true "Record ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /attendance [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.attendanceRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete attendance %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Attendance record deleted successfully"})
}

// CheckIn godoc
// @Summary Check an employee in for today
// @Description One record per employee per day. Arrivals after 10:15 are marked late. A qrCode value, when present, must match today's kiosk code.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body models.CheckInPayload true "Check-in"
// @Success 201 {object} models.AttendanceRecord
// @Failure 400 {object} object{error=string} "Already checked in or invalid QR code"
// @Router /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var payload models.CheckInPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := now.Format("2006-01-02")

	if payload.QRCode != "" {
		active, err := h.attendanceRepo.FindActiveQRCode(ctx, today)
		if err != nil {
			log.Printf("ERROR: find active QR code: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in"})
		}
		if active == nil || active.Code != payload.QRCode {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired QR code"})
		}
	}

	existing, err := h.attendanceRepo.FindByEmployeeAndDate(ctx, payload.EmployeeID, today)
	if err != nil {
		log.Printf("ERROR: find attendance for %s on %s: %v", payload.EmployeeID, today, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked in today"})
	}

	status := attendance.StatusPresent
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), lateHour, lateMinute, 0, 0, now.Location())
	if now.After(cutoff) {
		status = attendance.StatusLate
	}

	checkIn := now
	record := &models.AttendanceRecord{
		EmployeeID:   payload.EmployeeID,
		EmployeeName: payload.EmployeeName,
		Department:   payload.Department,
		Date:         today,
		CheckInTime:  &checkIn,
		Status:       status,
		Location:     payload.Location,
		Photo:        payload.Photo,
	}

	if _, err := h.attendanceRepo.Create(ctx, record); err != nil {
		log.Printf("ERROR: create check-in record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// CheckOut godoc
// @Summary Check an employee out for today
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body models.CheckOutPayload true "Check-out"
// @Success 200 {object} models.AttendanceRecord
// @Failure 400 {object} object{error=string} "Not checked in or already checked out"
// @Router /attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var payload models.CheckOutPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := now.Format("2006-01-02")

	record, err := h.attendanceRepo.FindByEmployeeAndDate(ctx, payload.EmployeeID, today)
	if err != nil {
		log.Printf("ERROR: find attendance for %s on %s: %v", payload.EmployeeID, today, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check out"})
	}
	if record == nil || record.CheckInTime == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Not checked in today"})
	}
	if record.CheckOutTime != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked out today"})
	}

	worked := now.Sub(*record.CheckInTime)
	totalHours := worked.Hours()
	hours := attendance.FormatHours(worked)

	update := bson.M{
		"checkOutTime": now,
		"status":       attendance.StatusCheckedOut,
		"totalHours":   totalHours,
		"hours":        hours,
	}

	if _, err := h.attendanceRepo.Update(ctx, record.ID, update); err != nil {
		log.Printf("ERROR: update check-out record %s: %v", record.ID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check out"})
	}

	record.CheckOutTime = &now
	record.Status = attendance.StatusCheckedOut
	record.TotalHours = totalHours
	record.Hours = hours
	return c.Status(fiber.StatusOK).JSON(record)
}

// GenerateQRCode godoc
// @Summary Generate today's kiosk QR code
// @Description Stores a fresh uuid code expiring at end of day and returns it as a base64 PNG.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 201 {object} object{code=string,qrImage=string,expiresAt=string}
// @Router /attendance/qr [get]
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := now.Format("2006-01-02")
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	code := &models.QRCode{
		Code:      uuid.NewString(),
		Date:      today,
		ExpiresAt: endOfDay,
	}

	if _, err := h.attendanceRepo.CreateQRCode(ctx, code); err != nil {
		log.Printf("ERROR: create QR code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	png, err := qrcode.Encode(code.Code, qrcode.Medium, 256)
	if err != nil {
		log.Printf("ERROR: encode QR code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":      code.Code,
		"qrImage":   "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"expiresAt": code.ExpiresAt.Format(time.RFC3339),
	})
}
