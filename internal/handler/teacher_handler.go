package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/response"
	"github.com/sekolahdigital/siakad-backend/internal/service"
	"github.com/sekolahdigital/siakad-backend/internal/validator"
)

// TeacherHandler handles admin-facing teacher management (CRUD).
type TeacherHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// ListTeachers godoc
// GET /api/v1/admin/teachers
// Lists all teachers with their subject and taught classes.
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.teacherService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// CreateTeacher godoc
// POST /api/v1/admin/teachers
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.Create(c.Request.Context(), &req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Duplicate NIP
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503": // Unknown subject or class id
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// UpdateTeacher godoc
// PUT /api/v1/admin/teachers/:id
// Replaces the teacher's profile and taught-class assignments.
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id := c.Param("id")

	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{
		ID:             id,
		Name:           req.Name,
		NIP:            req.NIP,
		SubjectID:      req.SubjectID,
		AvatarURL:      req.AvatarURL,
		AvatarHint:     req.AvatarHint,
		TaughtClassIDs: req.TaughtClassIDs,
	}

	if err := h.teacherService.Update(c.Request.Context(), teacher); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			case "23503":
				response.Fail(c, http.StatusBadRequest, response.ErrValidation)
				return
			}
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updatedTeacher, _ := h.teacherService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"teacher": updatedTeacher})
}

// DeleteTeacher godoc
// DELETE /api/v1/admin/teachers/:id
// Removes a teacher together with class assignments and the linked
// operator account.
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	if err := h.teacherService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Schedules still reference the teacher
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Guru berhasil dihapus."})
}
