package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolioBackend/internal/domain/dto"
	"portfolioBackend/internal/service"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Send handles POST /contact/send: validate, forward to the notifier once,
// report failure to the caller without retrying.
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	if err := h.contactService.Send(c.Request.Context(), &req); err != nil {
		respondError(c, http.StatusInternalServerError, "Server Error: Could not send message!")
		return
	}

	respondMessage(c, http.StatusOK, "Message Sent Successfully!")
}

func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Field() == "Phone" {
				return "Phone number is too long"
			}
		}
	}
	return "Please enter all required fields"
}
