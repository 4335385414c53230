package request

import (
	"sync"

	"gestao_producao/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the custom binding rules to gin's validator.
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("appointment_action", validAppointmentAction)
		}
	})
}

func validAppointmentAction(fl validator.FieldLevel) bool {
	switch (AppointmentRequest{Action: fl.Field().String()}).ResolveAction() {
	case entities.AppointmentActionStart, entities.AppointmentActionFinish:
		return true
	default:
		return false
	}
}
