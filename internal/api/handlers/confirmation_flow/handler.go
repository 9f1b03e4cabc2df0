package confirmation_flow

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	confirmationFlow "github.com/m04kA/keystone-front/internal/usecase/confirmation_flow"
)

// Handler HTTP-обертка над сценарием проверки и отмены брони
type Handler struct {
	flows   FlowStore
	newFlow FlowFactory
	logger  Logger
}

func NewHandler(flows FlowStore, newFlow FlowFactory, logger Logger) *Handler {
	return &Handler{
		flows:   flows,
		newFlow: newFlow,
		logger:  logger,
	}
}

// Create POST /api/v1/confirmation-flows
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	flow := h.newFlow()
	flowID := h.flows.Put(flow)

	h.logger.Info("POST /confirmation-flows - Flow created: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(flowID, flow.Snapshot()))
}

// Get GET /api/v1/confirmation-flows/{flowId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	flowID, flow, ok := h.load(w, r, "GET /confirmation-flows/{id}")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, flow.Snapshot()))
}

// Lookup POST /api/v1/confirmation-flows/{flowId}/lookup
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	const op = "POST /confirmation-flows/{id}/lookup"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req LookupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	snapshot, err := flow.Lookup(r.Context(), req.ReservationID, req.Name, req.Phone)
	if err != nil {
		h.respondError(w, op, err, msgLookupFailed)
		return
	}

	h.logger.Info("%s - Reservation found: flow_id=%s, reservation_id=%d", op, flowID, snapshot.Reservation.ID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// RequestCancel POST /api/v1/confirmation-flows/{flowId}/cancel-request
func (h *Handler) RequestCancel(w http.ResponseWriter, r *http.Request) {
	const op = "POST /confirmation-flows/{id}/cancel-request"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	snapshot, err := flow.RequestCancel()
	if err != nil {
		h.respondError(w, op, err, confirmationFlow.MsgCancelFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// AbortCancel DELETE /api/v1/confirmation-flows/{flowId}/cancel-request
func (h *Handler) AbortCancel(w http.ResponseWriter, r *http.Request) {
	const op = "DELETE /confirmation-flows/{id}/cancel-request"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	snapshot, err := flow.AbortCancel()
	if err != nil {
		h.respondError(w, op, err, confirmationFlow.MsgCancelFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// ConfirmCancel POST /api/v1/confirmation-flows/{flowId}/cancel
func (h *Handler) ConfirmCancel(w http.ResponseWriter, r *http.Request) {
	const op = "POST /confirmation-flows/{id}/cancel"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	snapshot, err := flow.ConfirmCancel(r.Context())
	if err != nil {
		h.respondError(w, op, err, confirmationFlow.MsgCancelFailed)
		return
	}

	h.logger.Info("%s - Reservation cancelled: flow_id=%s, cancel_id=%d", op, flowID, snapshot.CancelID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// SubmitRefund POST /api/v1/confirmation-flows/{flowId}/refund
// После успеха сценарий сброшен, в ответе состояние DONE.
func (h *Handler) SubmitRefund(w http.ResponseWriter, r *http.Request) {
	const op = "POST /confirmation-flows/{id}/refund"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req RefundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	snapshot, err := flow.SubmitRefund(r.Context(), req.RefundBank, req.RefundAccount)
	if err != nil {
		h.respondError(w, op, err, confirmationFlow.MsgRefundFailed)
		return
	}

	h.logger.Info("%s - Refund account saved: flow_id=%s, cancel_id=%d", op, flowID, snapshot.CancelID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// Reset POST /api/v1/confirmation-flows/{flowId}/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	flowID, flow, ok := h.load(w, r, "POST /confirmation-flows/{id}/reset")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, flow.Reset()))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, op string) (string, *confirmationFlow.Flow, bool) {
	flowID := mux.Vars(r)["flowId"]

	flow, err := h.flows.Get(flowID)
	if err != nil {
		h.logger.Warn("%s - Flow not found: flow_id=%s", op, flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return "", nil, false
	}

	return flowID, flow, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error, failMsg string) {
	status, msg := errorResponse(err, failMsg)

	switch {
	case status >= http.StatusInternalServerError && msg == "":
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
		return
	case status >= http.StatusInternalServerError:
		h.logger.Error("%s - %v", op, err)
	default:
		h.logger.Warn("%s - %v", op, err)
	}

	handlers.RespondError(w, status, msg)
}
