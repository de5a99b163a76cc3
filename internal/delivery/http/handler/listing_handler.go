package handler

import (
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/aroundme-service/internal/pkg/validator"
	"github.com/aroundme-service/internal/usecase"
	"github.com/aroundme-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListingHandler - объявления и отчёты по ним
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

func NewListingHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Создать объявление
// @Description Геокодирует адрес, сохраняет локацию и объявление с категориями и ориентирами
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Объявление"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreateListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if len(req.PointsOfInterest) == 0 {
		return utils.SendError(c, errors.ErrNoPointsOfInterest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.listingUC.CreateListing(c.UserContext(), req)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// List godoc
// @Summary Список объявлений
// @Tags Listings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Listing}
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	listings, err := h.listingUC.ListListings(c.UserContext())
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, listings, &utils.Meta{Total: len(listings)})
}

// Get godoc
// @Summary Получить объявление
// @Tags Listings
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=domain.Listing}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	listing, err := h.listingUC.GetListing(c.UserContext(), id)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, listing, nil)
}

// Report godoc
// @Summary Отчёт по объявлению
// @Description Места выбранных категорий, расстояния до ориентиров объявления и оценка
// @Tags Listings
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=domain.Report}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/report [get]
func (h *ListingHandler) Report(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.listingUC.GetListingReport(c.UserContext(), id)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}

// Delete godoc
// @Summary Удалить объявление
// @Tags Listings
// @Param id path string true "ID объявления"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.listingUC.DeleteListing(c.UserContext(), id); err != nil {
		return sendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
