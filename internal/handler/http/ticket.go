package http

import (
	"net/http"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/ticket"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
)

type TicketHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ticketHandlerImpl struct {
	ticketService ticket.TicketService
}

func NewTicketHandler(svc ticket.TicketService) TicketHandler {
	return &ticketHandlerImpl{ticketService: svc}
}

// List implements TicketHandler.
func (h *ticketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.ticketService.List(r.Context(), queryInt(r, "page"), queryInt(r, "page_size"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, result.Meta)
}
