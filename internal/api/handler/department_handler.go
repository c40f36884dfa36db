package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inmobilia/housing-api/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for the department resource.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List handles GET /viviendas.
//
// @Summary      List active departments
// @Tags         departments
// @Produce      json
// @Success      200  {array}   domain.Department
// @Failure      404  {object}  errorResponse
// @Router       /viviendas [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Get handles GET /viviendas/:id. Unknown ids answer 404; the legacy variant
// echoed a null body with 200.
//
// @Summary      Get a department by id
// @Tags         departments
// @Produce      json
// @Param        id   path      string  true  "Department id"
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  errorResponse
// @Router       /viviendas/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	department, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Create handles POST /viviendas.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      createDepartmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Router       /viviendas [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	department, err := h.service.Create(c.Request().Context(), ports.CreateDepartmentInput{
		Type:      req.Type,
		Location:  req.Location,
		District:  req.District,
		Floor:     req.Floor,
		Unit:      req.Unit,
		FlatRooms: req.FlatRooms,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// Update handles PUT /viviendas/:id/editar.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Department id"
// @Param        body  body      updateDepartmentRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /viviendas/{id}/editar [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	department, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDepartmentInput{
		Type:      req.Type,
		Location:  req.Location,
		District:  req.District,
		Floor:     req.Floor,
		Unit:      req.Unit,
		FlatRooms: req.FlatRooms,
		Removed:   req.Removed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Delete handles DELETE /viviendas/:id.
//
// @Summary      Soft-delete a department
// @Tags         departments
// @Param        id  path  string  true  "Department id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /viviendas/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
