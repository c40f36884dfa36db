package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inmobilia/housing-api/internal/core/ports"
)

// reservedListParams are the query parameters consumed by the listing itself.
// Every other parameter name is treated as a field filter candidate.
var reservedListParams = map[string]bool{
	"age":     true,
	"minAge":  true,
	"maxAge":  true,
	"removed": true,
	"sortBy":  true,
	"order":   true,
	"page":    true,
	"search":  true,
}

// UserHandler handles HTTP requests for the user resource. Domain errors are
// returned as-is and mapped by the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /usuarios.
//
// @Summary      List users with dynamic filters
// @Tags         users
// @Produce      json
// @Param        age     query     int     false  "Exact age"
// @Param        minAge  query     int     false  "Inclusive lower age bound"
// @Param        maxAge  query     int     false  "Inclusive upper age bound"
// @Param        search  query     string  false  "Substring match over name, email, surname"
// @Param        sortBy  query     string  false  "Sort field (default name)"
// @Param        order   query     string  false  "asc or desc"
// @Param        page    query     int     false  "1-based page of 25"
// @Success      200     {array}   domain.User
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := parseListFilter(c)

	users, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// parseListFilter maps query parameters onto the listing filter. Numeric
// parameters coerce to 0 when malformed, matching the legacy permissive cast.
func parseListFilter(c echo.Context) ports.ListUsersFilter {
	filter := ports.ListUsersFilter{Fields: map[string]string{}}
	params := c.QueryParams()

	if v, ok := queryInt(params.Get("age"), params.Has("age")); ok {
		filter.Age = v
	}
	if v, ok := queryInt(params.Get("minAge"), params.Has("minAge")); ok {
		filter.MinAge = v
	}
	if v, ok := queryInt(params.Get("maxAge"), params.Has("maxAge")); ok {
		filter.MaxAge = v
	}

	filter.Search = params.Get("search")
	filter.SortBy = params.Get("sortBy")
	if filter.SortBy != "" {
		filter.Order = "asc"
		if params.Has("order") {
			filter.Order = params.Get("order")
		}
	}
	if params.Has("page") {
		filter.Page, _ = strconv.Atoi(params.Get("page"))
	}

	for key, values := range params {
		if reservedListParams[key] || len(values) == 0 {
			continue
		}
		filter.Fields[key] = values[0]
	}
	return filter
}

func queryInt(raw string, present bool) (*int, bool) {
	if !present {
		return nil, false
	}
	n, _ := strconv.Atoi(raw)
	return &n, true
}

// Get handles GET /usuarios/:id. Removed documents are still returned.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /usuarios.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		DNI:         req.DNI,
		Age:         req.Age,
		Picture:     req.Picture,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /usuarios/:id/editar. Responds 200 with the updated
// document; the legacy 204-with-body contract was contradictory.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to merge"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /usuarios/{id}/editar [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		DNI:         req.DNI,
		Age:         req.Age,
		Picture:     req.Picture,
		Description: req.Description,
		Removed:     req.Removed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /usuario/:id (singular path kept for compatibility
// with existing clients). Soft delete: 204, no body.
//
// @Summary      Soft-delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /usuario/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
