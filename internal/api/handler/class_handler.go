package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ClassHandler serves the class-management tab. Multi-class support is
// not live yet, so every endpoint answers the empty shape the panel
// renders as "no classes".
type ClassHandler struct{}

func NewClassHandler() *ClassHandler {
	return &ClassHandler{}
}

type classesResponse struct {
	Classes []any `json:"classes"`
}

type classResponse struct {
	Class any `json:"cls"`
}

// List handles GET /classes.
//
// @Summary      Registered classes
// @Tags         classes
// @Produce      json
// @Success      200  {object}  classesResponse
// @Router       /classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, classesResponse{Classes: []any{}})
}

// Get handles GET /classes/:id.
//
// @Summary      Single class by id
// @Tags         classes
// @Produce      json
// @Success      200  {object}  classResponse
// @Router       /classes/{id} [get]
func (h *ClassHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, classResponse{Class: nil})
}

// Search handles GET /classes/search.
//
// @Summary      Search classes by name
// @Tags         classes
// @Produce      json
// @Success      200  {object}  classesResponse
// @Router       /classes/search [get]
func (h *ClassHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, classesResponse{Classes: []any{}})
}
