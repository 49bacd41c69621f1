package echoapi

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core"
)

const contactReceivedMessage = "문의가 접수되었습니다."

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (cr *ContactRequest) Validate() error {
	cr.Name = core.CleanString(cr.Name)
	cr.Email = core.CleanString(cr.Email, true /* lower */)
	cr.Message = core.CleanString(cr.Message)
	return core.Validate.Struct(cr)
}

type contactApi struct {
	mailSvc core.EmailService
}

func registerContactAPI(g *echo.Group, mailSvc core.EmailService) {
	api := contactApi{mailSvc: mailSvc}
	g.POST("/contact", api.submit)
}

// submit forwards an enquiry to the office contact address. Delivery is
// fire-and-forget; the sender is asked to call when it matters.
func (api *contactApi) submit(ctx echo.Context) error {
	var data ContactRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ContactRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	api.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{core.Conf.ContactEmail},
		Subject: fmt.Sprintf("문의: %s <%s>", data.Name, data.Email),
		Body:    data.Message,
	})

	return ctx.JSON(http.StatusOK, echo.Map{"message": contactReceivedMessage})
}
