package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/response"
	"github.com/sekolahdigital/siakad-backend/internal/service"
	"github.com/sekolahdigital/siakad-backend/internal/validator"
)

// AdmissionHandler handles public registration and the admin admission
// decision flow.
type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

// NewAdmissionHandler creates a new AdmissionHandler.
func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissionService: admissionService}
}

// Register godoc
// POST /api/v1/public/registrations
// Creates a Pending applicant from the public registration form.
func (h *AdmissionHandler) Register(c *gin.Context) {
	var req model.CreateApplicantRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	applicant, err := h.admissionService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "Pendaftar berhasil ditambahkan.",
		"applicant_id": applicant.ID,
	})
}

// ListAdmissions godoc
// GET /api/v1/admin/admissions
// Lists all applicants, newest registrations first.
func (h *AdmissionHandler) ListAdmissions(c *gin.Context) {
	applicants, err := h.admissionService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applicants": applicants})
}

// SetStatus godoc
// PUT /api/v1/admin/admissions/:id
// Updates an applicant's admission status. Accepting promotes the
// applicant to a student in the same transaction.
func (h *AdmissionHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var req model.SetAdmissionStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.admissionService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdmissionStatus):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
		case errors.Is(err, service.ErrApplicantNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNoClassAvailable):
			response.Fail(c, http.StatusConflict, response.ErrNoClassAvailable)
		default:
			// A unique violation on students.applicant_id means a
			// concurrent accept won the race; everything rolled back.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	body := gin.H{
		"message": fmt.Sprintf("Status pendaftar telah diubah menjadi %s.", result.Status),
	}
	if result.StudentID != "" {
		body["student_id"] = result.StudentID
	}
	if result.AlreadyEnrolled {
		body["message"] = "Status diperbarui. Siswa sudah ada untuk pendaftar ini."
	}

	response.Success(c, http.StatusOK, body)
}
