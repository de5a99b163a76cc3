package handler

import (
	"time"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/aroundme-service/internal/pkg/validator"
	"github.com/aroundme-service/internal/usecase"
	"github.com/aroundme-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AroundMeHandler - геокодирование, места поблизости, ориентиры и оценка
type AroundMeHandler struct {
	aroundMeUC *usecase.AroundMeUseCase
	logger     *zap.Logger
}

// NewAroundMeHandler - создание нового AroundMeHandler
func NewAroundMeHandler(aroundMeUC *usecase.AroundMeUseCase, logger *zap.Logger) *AroundMeHandler {
	return &AroundMeHandler{
		aroundMeUC: aroundMeUC,
		logger:     logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Description Возвращает координаты, форматированный адрес, город и страну
// @Tags Geocode
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=domain.LocationAddress}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode [post]
func (h *AroundMeHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.aroundMeUC.GeoCode(c.UserContext(), req.Address)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// NearbyPoi godoc
// @Summary Места одной категории поблизости
// @Description Ищет места категории в радиусе от адреса и считает расстояние и время пешком
// @Tags POI
// @Accept json
// @Produce json
// @Param request body dto.NearbyPoiRequest true "Адрес, категория, радиус"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyPoiResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/pois/nearby [post]
func (h *AroundMeHandler) NearbyPoi(c *fiber.Ctx) error {
	var req dto.NearbyPoiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	places, err := h.aroundMeUC.FindNearbyPoi(c.UserContext(), req.Address, req.PointOfInterest, req.Radius, req.Limit)
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, dto.NearbyPoiResponse{
		PointOfInterest: req.PointOfInterest,
		Places:          places,
	}, &utils.Meta{
		Total:    len(places),
		TimeMSec: float64(time.Since(start).Milliseconds()),
	})
}

// NearbyAll godoc
// @Summary Места нескольких категорий поблизости
// @Description Поиск по всем категориям параллельно, результат сгруппирован по категории и отсортирован по времени пешком
// @Tags POI
// @Accept json
// @Produce json
// @Param request body dto.NearbyAllRequest true "Адрес, категории, радиус"
// @Success 200 {object} utils.SuccessResponse{data=domain.NearbyPOIs}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/pois/nearby/all [post]
func (h *AroundMeHandler) NearbyAll(c *fiber.Ctx) error {
	var req dto.NearbyAllRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.aroundMeUC.FindAllNearbyPois(c.UserContext(), req.Address, req.PointsOfInterest, req.Radius, req.Limit)
	if err != nil {
		return sendError(c, err)
	}

	total := 0
	for _, group := range result.Groups {
		total += len(group)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    total,
		Failed:   len(result.Failures),
		TimeMSec: float64(time.Since(start).Milliseconds()),
	})
}

// LandmarkDistance godoc
// @Summary Расстояния до ориентиров
// @Description Расстояние по прямой, пешком и общественным транспортом от адреса до каждого ориентира
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param request body dto.LandmarkDistanceRequest true "Адрес и ориентиры"
// @Success 200 {object} utils.SuccessResponse{data=dto.LandmarkDistanceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/landmarks/distance [post]
func (h *AroundMeHandler) LandmarkDistance(c *fiber.Ctx) error {
	var req dto.LandmarkDistanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.aroundMeUC.DistanceFromLandmarks(c.UserContext(), req.Address, req.Landmarks)
	if err != nil {
		return sendError(c, err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	return utils.SendSuccess(c, dto.LandmarkDistanceResponse{Landmarks: results}, &utils.Meta{
		Total:  len(results),
		Failed: failed,
	})
}

// Score godoc
// @Summary Оценка района
// @Description Считает оценку по уже сгруппированным местам; без config используется таблица по умолчанию
// @Tags Score
// @Accept json
// @Produce json
// @Param request body dto.ScoreRequest true "Сгруппированные места и таблица весов"
// @Success 200 {object} utils.SuccessResponse{data=domain.Score}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/score [post]
func (h *AroundMeHandler) Score(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, invalidBody())
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	table := req.Config
	if len(table) == 0 {
		table = usecase.DefaultScoreConfig
	}

	return utils.SendSuccess(c, usecase.CalculateScore(req.GroupedPOIs, table), nil)
}

// Categories godoc
// @Summary Поддерживаемые категории
// @Tags POI
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PoiCategoriesResponse}
// @Router /api/v1/pois/categories [get]
func (h *AroundMeHandler) Categories(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.PoiCategoriesResponse{
		Categories: domain.AllPointsOfInterest,
		Default:    domain.DefaultReportPOIs,
	}, &utils.Meta{
		Total: len(domain.AllPointsOfInterest),
	})
}
