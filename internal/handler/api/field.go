package api

import (
	"errors"
	"net/http"

	reqdto "canchacontrol/internal/handler/dto/request"
	resdto "canchacontrol/internal/handler/dto/response"
	"canchacontrol/internal/handler/middleware"
	"canchacontrol/internal/usecase/commands"
	"canchacontrol/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	fieldCommands       commands.FieldCommands
	fieldQueries        queries.FieldQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewFieldHandler(fieldCommands commands.FieldCommands, fieldQueries queries.FieldQueries, availabilityQueries queries.AvailabilityQueries) *FieldHandler {
	return &FieldHandler{
		fieldCommands:       fieldCommands,
		fieldQueries:        fieldQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List fields
// @Description List all fields, optionally filtered by type
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param type query string false "Field type filter"
// @Success 200 {array} resdto.FieldResponse
// @Failure 401 {object} map[string]string
// @Router /fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	var typeFilter *string
	if t := c.Query("type"); t != "" {
		typeFilter = &t
	}

	fields, err := h.fieldQueries.List(c.Request.Context(), typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldViews(fields))
}

// @Summary Get field
// @Description Get field by ID
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fields/{id} [get]
func (h *FieldHandler) GetField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	field, err := h.fieldQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Field not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldView(field))
}

// @Summary Create field
// @Description Create a new rentable field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFieldRequest true "Field request"
// @Success 201 {object} resdto.FieldResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	field, err := h.fieldCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.respondFieldError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFieldView(field))
}

// @Summary Update field
// @Description Partially update a field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Field update request"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /fields/{id} [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	var req reqdto.UpdateFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	field, err := h.fieldCommands.Update(c.Request.Context(), id, req, userID)
	if err != nil {
		h.respondFieldError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldView(field))
}

// @Summary Delete field
// @Description Delete a field; its reservations are kept and detached
// @Tags fields
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fields/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	if err := h.fieldCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondFieldError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get field availability
// @Description Get occupied and free slots for a field on a date
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	availability, err := h.availabilityQueries.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidAvailabilityDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errors.Is(err, queries.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Field not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(availability))
}

func (h *FieldHandler) respondFieldError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Field not found",
		})
	case errors.Is(err, commands.ErrDuplicateFieldName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A field with this name already exists",
		})
	case errors.Is(err, commands.ErrFieldValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Field validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
