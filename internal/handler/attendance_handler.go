package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
	"github.com/sekolahdigital/siakad-backend/internal/response"
	"github.com/sekolahdigital/siakad-backend/internal/service"
	"github.com/sekolahdigital/siakad-backend/internal/validator"
)

// AttendanceHandler handles the scan check-in endpoint and the report view.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn godoc
// POST /api/v1/admin/attendance/check-in
// Records attendance for a scanned student and pushes the event to the
// live feed.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req model.CheckInRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// Report godoc
// GET /api/v1/admin/attendance
// Lists attendance records. Optional filters: ?class_id=, ?from=YYYY-MM-DD,
// ?to=YYYY-MM-DD.
func (h *AttendanceHandler) Report(c *gin.Context) {
	filter := repository.ReportFilter{ClassID: c.Query("class_id")}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		// Include the whole end day.
		filter.To = to.AddDate(0, 0, 1)
	}

	records, err := h.attendanceService.Report(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}
