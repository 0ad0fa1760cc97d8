package http

import (
	"vitalguard-api/internal/model"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRegisterRequest(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processRegisterRequest: %v", err)
		return registerReq{}, errWrongBody
	}
	return req, nil
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processLoginRequest: %v", err)
		return loginReq{}, errWrongBody
	}
	return req, nil
}

func (h *handler) processAssignRequest(c *gin.Context) (model.Scope, assignReq, error) {
	sc, err := h.scopeFromContext(c)
	if err != nil {
		return model.Scope{}, assignReq{}, err
	}

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processAssignRequest: %v", err)
		return model.Scope{}, assignReq{}, errWrongBody
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
