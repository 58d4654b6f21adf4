package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
	"github.com/stemsi/schoolms-backend/internal/validator"
)

// GradeHandler handles single and class-wide grade submission.
type GradeHandler struct {
	gradeService *service.GradeService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// SaveGrade handles POST /api/v1/grades: upsert one grade keyed by
// (student, class, assignment).
func (h *GradeHandler) SaveGrade(c *gin.Context) {
	var req model.SaveGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.gradeService.SaveGrade(c.Request.Context(), req.StudentID, req.ClassID, req.Assignment, *req.Score, req.Date)
	if err != nil {
		failGradeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"grade_id": id})
}

// SaveAllGrades handles POST /api/v1/classes/:id/grades: one assignment
// across a class roster. Partial score maps are allowed.
func (h *GradeHandler) SaveAllGrades(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SaveAllGradesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	saved, err := h.gradeService.SaveAllGrades(c.Request.Context(), classID, req.Assignment, req.Date, req.Scores)
	if err != nil {
		failGradeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": saved})
}

func failGradeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingAssignmentName):
		response.Fail(c, http.StatusBadRequest, response.ErrMissingAssignmentName)
	case errors.Is(err, service.ErrInvalidScore):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidScore)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
