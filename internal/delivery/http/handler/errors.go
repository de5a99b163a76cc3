package handler

import (
	stderrors "errors"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/infrastructure/googlemaps"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/aroundme-service/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sendError приводит ошибки use case к AppError.
// Всё, что не AppError и не "адрес не найден", считается ошибкой провайдера карт.
func sendError(c *fiber.Ctx, err error) error {
	var notFound *domain.NoLocationsFoundError
	if stderrors.As(err, &notFound) {
		return utils.SendError(c, errors.ErrLocationNotFound.WithMessage(notFound.Message).WithDetails(map[string]interface{}{
			"input": notFound.Input,
		}))
	}

	if _, ok := errors.As(err); ok {
		return utils.SendError(c, err)
	}

	details := map[string]interface{}{"reason": err.Error()}
	var statusErr *googlemaps.StatusError
	if stderrors.As(err, &statusErr) {
		details["status"] = statusErr.Status
	}
	return utils.SendError(c, errors.ErrProviderError.WithDetails(details))
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidID
	}
	return id, nil
}

func invalidBody() error {
	return errors.ErrInvalidRequest.WithMessage("Invalid request body")
}
