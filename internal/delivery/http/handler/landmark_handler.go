package handler

import (
	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/aroundme-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LandmarkHandler - ориентиры городов
type LandmarkHandler struct {
	landmarkUC *usecase.LandmarkUseCase
	logger     *zap.Logger
}

func NewLandmarkHandler(landmarkUC *usecase.LandmarkUseCase, logger *zap.Logger) *LandmarkHandler {
	return &LandmarkHandler{
		landmarkUC: landmarkUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Ориентиры
// @Description Без city возвращает все сохранённые ориентиры. С city и country - ориентиры города,
// @Description при suggest=true дополненные популярными местами
// @Tags Landmarks
// @Produce json
// @Param city query string false "Город"
// @Param country query string false "Страна"
// @Param suggest query bool false "Дополнить популярными местами" default(false)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SavedLandMark}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/landmarks [get]
func (h *LandmarkHandler) List(c *fiber.Ctx) error {
	city := c.Query("city")
	country := c.Query("country")

	var (
		landmarks []*domain.SavedLandMark
		err       error
	)
	switch {
	case city == "" && country == "":
		landmarks, err = h.landmarkUC.ListLandmarks(c.UserContext())
	case city == "" || country == "":
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("city and country are required together"))
	default:
		landmarks, err = h.landmarkUC.FindOrCreateLandmarks(c.UserContext(), city, country, c.QueryBool("suggest", false))
	}
	if err != nil {
		return sendError(c, err)
	}

	return utils.SendSuccess(c, landmarks, &utils.Meta{Total: len(landmarks)})
}
