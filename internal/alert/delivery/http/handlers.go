package http

import (
	"vitalguard-api/internal/alert"
	"vitalguard-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubmitSignal ingests one signal from a sensor or collaborator.
// @Summary Submit a signal
// @Description Evaluate a normalized signal (vitals snapshot, fall, cough, voice or manual trigger) and raise an alert when warranted. With confirmed=true it instead escalates the patient's active emergency (the confirmed-not-okay path).
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body signalReq true "Signal payload"
// @Success 200 {object} response.Resp{data=submitResp}
// @Failure 400 {object} response.Resp "Invalid signal"
// @Failure 404 {object} response.Resp "No active emergency (confirmed path)"
// @Router /signals [POST]
func (h *handler) SubmitSignal(c *gin.Context) {
	ctx := c.Request.Context()

	_, req, err := h.processSignalRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	if req.Confirmed {
		out, err := h.uc.ConfirmNoResponse(ctx, req.toConfirmInput())
		if err != nil {
			h.l.Warnf(ctx, "alert.delivery.http.SubmitSignal: %v", err)
			response.ErrorWithMap(c, err, errorMapping)
			return
		}
		response.OK(c, newEscalateResp(out))
		return
	}

	out, err := h.uc.SubmitSignal(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.SubmitSignal: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSubmitResp(out))
}

// Acknowledge resolves a pending alert.
// @Summary Acknowledge an alert
// @Description Mark a pending alert acknowledged and cancel its confirmation window. Returns already_resolved=true when the alert had reached a terminal state first.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Resp{data=ackResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Failure 404 {object} response.Resp "Alert not found"
// @Router /alerts/{id}/acknowledge [POST]
func (h *handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.Acknowledge(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.Acknowledge: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAckResp(out))
}

// ForceEscalate escalates a pending alert immediately.
// @Summary Escalate an alert
// @Description Escalate a pending alert without waiting for the confirmation window. Requires the escalate_alerts capability.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param body body forceEscalateReq false "Escalation reason"
// @Success 200 {object} response.Resp{data=escalateResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Failure 404 {object} response.Resp "Alert not found"
// @Router /alerts/{id}/escalate [POST]
func (h *handler) ForceEscalate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processForceEscalateRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.ForceEscalate(ctx, sc, alert.ForceEscalateInput{
		AlertID: c.Param("id"),
		Reason:  req.Reason,
	})
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.ForceEscalate: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newEscalateResp(out))
}

// ListActive lists a patient's unresolved alerts.
// @Summary List active alerts
// @Description Return unresolved alerts in insertion order. patient_id defaults to the caller; doctors and admins may omit it to list across patients.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param patient_id query string false "Patient ID"
// @Success 200 {object} response.Resp{data=[]alertResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Router /alerts [GET]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	alerts, err := h.uc.ListActive(ctx, sc, c.Query("patient_id"))
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.ListActive: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertListResp(alerts))
}

// History lists past alerts with pagination.
// @Summary Alert history
// @Description Return a paginated, newest-first alert listing filtered by patient, types and states.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param patient_id query string false "Patient ID"
// @Param types query string false "Comma-separated alert types"
// @Param states query string false "Comma-separated alert states"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp{data=historyResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Router /alerts/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processHistoryRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.History: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newHistoryResp(out))
}

// Detail returns one alert with its event history.
// @Summary Get alert detail
// @Description Fetch one alert, including its full audit trail of lifecycle events.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Resp{data=alertResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Failure 404 {object} response.Resp "Alert not found"
// @Router /alerts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	a, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.Detail: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertResp(a))
}
