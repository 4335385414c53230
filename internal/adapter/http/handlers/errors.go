package handlers

import (
	"errors"
	"net/http"

	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase"
	"gestao_producao/pkg"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidAppointment  = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidShareToken), errors.Is(err, production.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, production.ErrInvalidIndex):
		return pkg.NewDomainError("INVALID_INDEX", "Item or stage index out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is already completed or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was modified concurrently, retry the appointment", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainErrorSimple("ORDER_LOCKED", "Order is being updated, try again", http.StatusLocked)
	case errors.Is(err, usecase.ErrStageAlreadyStarted):
		return pkg.NewDomainErrorSimple("STAGE_ALREADY_STARTED", "Stage already started", http.StatusConflict)
	case errors.Is(err, usecase.ErrStageAlreadyFinished):
		return pkg.NewDomainErrorSimple("STAGE_ALREADY_FINISHED", "Stage already finished", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
