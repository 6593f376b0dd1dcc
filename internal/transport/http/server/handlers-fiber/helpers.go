package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/lazygod321/rustplusplus/internal/entities"
	api "github.com/lazygod321/rustplusplus/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrSessionNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "no session for server"
	case errors.Is(err, entities.ErrAlreadyPaired):
		status = http.StatusConflict
		code = api.ALREADYPAIRED
		msg = "member is already paired with the server"
	case errors.Is(err, entities.ErrNotPaired):
		status = http.StatusNotFound
		code = api.NOTPAIRED
		msg = "member is not paired with the server"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var res api.ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}

// outcomeStatus maps a leader outcome to an HTTP status.
func outcomeStatus(out entities.Outcome) int {
	switch {
	case out.OK():
		return http.StatusOK
	case out.Reason == entities.ReasonSessionUnavailable:
		return http.StatusServiceUnavailable
	case out.Reason == entities.ReasonRemoteTransferFailed:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
