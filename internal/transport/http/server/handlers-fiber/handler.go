// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/lazygod321/rustplusplus/internal/oapi"
	"github.com/lazygod321/rustplusplus/internal/report"
	"github.com/lazygod321/rustplusplus/internal/usecase"

	"go.uber.org/zap"
)

var _ oapi.ServerInterface = (*Handler)(nil)

// Handler implements oapi.ServerInterface using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	reporter *report.Reporter
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, reporter *report.Reporter) *Handler {
	return &Handler{
		log:      log,
		uc:       usecase,
		reporter: reporter,
	}
}
