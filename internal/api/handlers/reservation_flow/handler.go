package reservation_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	reservationFlow "github.com/m04kA/keystone-front/internal/usecase/reservation_flow"
)

// Handler HTTP-обертка над сценарием бронирования.
// Состояние сценария живет в FlowStore, клиент передает только flowId.
type Handler struct {
	catalog ThemeCatalog
	flows   FlowStore
	newFlow FlowFactory
	logger  Logger
}

func NewHandler(catalog ThemeCatalog, flows FlowStore, newFlow FlowFactory, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		flows:   flows,
		newFlow: newFlow,
		logger:  logger,
	}
}

// Create POST /api/v1/reservation-flows
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ThemeID <= 0 {
		h.logger.Warn("POST /reservation-flows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidThemeID)
		return
	}

	theme, err := h.catalog.Get(r.Context(), req.ThemeID)
	if err != nil {
		h.respondError(w, "POST /reservation-flows", err)
		return
	}

	flow, err := h.newFlow(*theme)
	if err != nil {
		h.respondError(w, "POST /reservation-flows", err)
		return
	}

	flowID := h.flows.Put(flow)

	h.logger.Info("POST /reservation-flows - Flow created: flow_id=%s, theme_id=%d", flowID, theme.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(flowID, flow.Snapshot()))
}

// Get GET /api/v1/reservation-flows/{flowId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	flowID, flow, ok := h.load(w, r, "GET /reservation-flows/{id}")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, flow.Snapshot()))
}

// Abandon DELETE /api/v1/reservation-flows/{flowId}
// Уход со страницы: черновик уничтожается.
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]
	if !h.flows.Delete(flowID) {
		h.logger.Warn("DELETE /reservation-flows/{id} - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	h.logger.Info("DELETE /reservation-flows/{id} - Flow abandoned: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// SelectDate PUT /api/v1/reservation-flows/{flowId}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /reservation-flows/{id}/date"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Date == "" {
		h.logger.Warn("%s - Missing date: flow_id=%s", op, flowID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	snapshot, err := flow.SelectDate(r.Context(), req.Date)
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	h.logger.Info("%s - Date selected: flow_id=%s, date=%s, slots=%d", op, flowID, req.Date, len(snapshot.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// SelectSlot PUT /api/v1/reservation-flows/{flowId}/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /reservation-flows/{id}/slot"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	snapshot, err := flow.SelectSlot(req.TimeSlotID)
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	h.logger.Info("%s - Slot selected: flow_id=%s, slot_id=%d", op, flowID, req.TimeSlotID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// UpdateDetails PUT /api/v1/reservation-flows/{flowId}/details
// Данные сохраняются без проверки, проверка выполняется при отправке.
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	const op = "PUT /reservation-flows/{id}/details"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req DetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	snapshot, err := flow.UpdateDetails(req.ToDetails())
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flowID, snapshot))
}

// Submit POST /api/v1/reservation-flows/{flowId}/submit
// Тело необязательно: переданные в нем поля формы обновляются перед отправкой,
// остальные остаются как были (например, только новый captchaToken при повторе).
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /reservation-flows/{id}/submit"

	flowID, flow, ok := h.load(w, r, op)
	if !ok {
		return
	}

	var req SubmitRequest
	err := handlers.DecodeJSON(r, &req)
	switch {
	case errors.Is(err, handlers.ErrEmptyBody):
	case err != nil:
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	default:
		if _, err := flow.PatchDetails(req.ToPatch()); err != nil {
			h.respondError(w, op, err)
			return
		}
	}

	created, err := flow.Submit(r.Context())
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	h.logger.Info("%s - Reservation created: flow_id=%s, reservation_id=%d", op, flowID, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(flowID, flow.Snapshot()))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, op string) (string, *reservationFlow.Flow, bool) {
	flowID := mux.Vars(r)["flowId"]

	flow, err := h.flows.Get(flowID)
	if err != nil {
		h.logger.Warn("%s - Flow not found: flow_id=%s", op, flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return "", nil, false
	}

	return flowID, flow, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	status, msg := errorResponse(err)

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
