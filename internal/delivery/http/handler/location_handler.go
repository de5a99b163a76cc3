package handler

import (
	"strings"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/aroundme-service/internal/pkg/validator"
	"github.com/aroundme-service/internal/usecase"
	"github.com/aroundme-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocationHandler - сохранённые локации и отчёты по ним
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Сохранить локацию
// @Description Геокодирует адрес "улица номер, город" и сохраняет локацию; повторный адрес возвращает существующую
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Адрес"
// @Success 201 {object} utils.SuccessResponse{data=domain.SavedLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidAddress)
	}

	location, err := h.locationUC.CreateLocation(c.UserContext(), req.Address)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendCreated(c, location)
}

// Get godoc
// @Summary Получить локацию
// @Tags Locations
// @Produce json
// @Param id path string true "ID локации"
// @Success 200 {object} utils.SuccessResponse{data=domain.SavedLocation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	location, err := h.locationUC.GetLocation(c.UserContext(), id)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, location, nil)
}

// Report godoc
// @Summary Отчёт по локации
// @Description Места поблизости, расстояния до ориентиров города и оценка района
// @Tags Locations
// @Produce json
// @Param id path string true "ID локации"
// @Param pois query string false "Категории через запятую; по умолчанию стандартный набор"
// @Success 200 {object} utils.SuccessResponse{data=domain.Report}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/report [get]
func (h *LocationHandler) Report(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	pois, err := parsePOIs(c.Query("pois"))
	if err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.locationUC.GetLocationReport(c.UserContext(), id, pois)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}

// Delete godoc
// @Summary Удалить локацию
// @Tags Locations
// @Param id path string true "ID локации"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.locationUC.DeleteLocation(c.UserContext(), id); err != nil {
		return sendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parsePOIs(raw string) ([]domain.PointOfInterest, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var pois []domain.PointOfInterest
	for _, part := range strings.Split(raw, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		if !domain.IsValidPointOfInterest(p) {
			return nil, errors.ErrInvalidPointOfInterest.WithDetails(map[string]interface{}{"poi": p})
		}
		pois = append(pois, domain.PointOfInterest(p))
	}
	return pois, nil
}
