package handlers

import (
	"errors"
	"io"
	"net/http"

	response "github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/dto/response"
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"
	"github.com/asbrown77/bagile-platform-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// Payload cap for a single webhook delivery. WooCommerce order payloads top
// out well under 1 MiB even with dozens of line items.
const maxWebhookBody = 4 << 20

var (
	errUnknownWebhookSource = pkg.NewDomainErrorSimple("UNKNOWN_SOURCE", "Unknown webhook source", http.StatusNotFound)
	errInvalidWebhookBody   = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_BODY", "Invalid webhook body", http.StatusBadRequest)
)

// WebhookHandler accepts push deliveries from upstream commerce systems and
// appends them to the raw event store. It never processes inline; the batch
// worker picks the record up later.
type WebhookHandler struct {
	usecase usecase.IIngestUseCase
}

func NewWebhookHandler(uc usecase.IIngestUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive handles a webhook delivery for the source named in the path.
//
// @Summary      Ingest a webhook payload
// @Description  Stores the raw payload for asynchronous processing. Duplicate deliveries are acknowledged without storing.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        source    path  string  true  "Source system (woocommerce or xero)"
// @Param        event_id  query string  false "Upstream external id of the order or invoice"
// @Success      202  {object}  response.WebhookResponse
// @Success      200  {object}  response.WebhookResponse "Duplicate delivery, already stored"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /webhooks/{source} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	source, ok := entities.ParseSource(c.Param("source"))
	if !ok {
		c.JSON(errUnknownWebhookSource.HTTPStatus, errUnknownWebhookSource.ToHTTPError())
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil || len(body) == 0 {
		c.JSON(errInvalidWebhookBody.HTTPStatus, errInvalidWebhookBody.ToHTTPError())
		return
	}

	externalID := c.Query("event_id")
	eventType := c.GetHeader("X-WC-Webhook-Topic")

	eventID, err := h.usecase.Insert(c.Request.Context(), source, externalID, body, eventType)
	if err != nil {
		appErr := mapIngestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusAccepted
	if eventID == "" {
		// Already stored; acknowledge without re-queueing.
		status = http.StatusOK
	}
	c.JSON(status, response.WebhookResponse{
		EventID:   eventID,
		Duplicate: eventID == "",
	})
}

func mapIngestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIngestSource):
		return pkg.NewDomainErrorSimple("UNKNOWN_SOURCE", "Unknown webhook source", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidIngestPayload):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_BODY", "Invalid webhook body", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
