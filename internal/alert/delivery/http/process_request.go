package http

import (
	"vitalguard-api/internal/model"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSignalRequest(c *gin.Context) (model.Scope, signalReq, error) {
	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, signalReq{}, err
	}

	var req signalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "alert.delivery.http.processSignalRequest: %v", err)
		return model.Scope{}, signalReq{}, errWrongBody
	}

	// Patients reporting for themselves may omit the patient id.
	if req.PatientID == "" {
		req.PatientID = sc.UserID
	}

	return sc, req, nil
}

func (h *handler) processHistoryRequest(c *gin.Context) (model.Scope, historyReq, error) {
	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, historyReq{}, err
	}

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "alert.delivery.http.processHistoryRequest: %v", err)
		return model.Scope{}, historyReq{}, errWrongQuery
	}

	return sc, req, nil
}

func (h *handler) processForceEscalateRequest(c *gin.Context) (model.Scope, forceEscalateReq, error) {
	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, forceEscalateReq{}, err
	}

	// The body is optional, reason defaults inside the usecase.
	var req forceEscalateReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(c.Request.Context(), "alert.delivery.http.processForceEscalateRequest: %v", err)
			return model.Scope{}, forceEscalateReq{}, errWrongBody
		}
	}

	return sc, req, nil
}

func (h *handler) scopeFromContext(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}
