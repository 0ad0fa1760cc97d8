package http

import (
	"vitalguard-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Register creates a new actor and returns a session token.
// @Summary Register a new user
// @Description Create a patient, caretaker, doctor or admin account and return a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Registration payload"
// @Success 200 {object} response.Resp{data=sessionResp}
// @Failure 400 {object} response.Resp "Invalid body or role"
// @Failure 409 {object} response.Resp "Username already taken"
// @Router /auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.Register: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSessionResp(out))
}

// Login authenticates an actor by username and password.
// @Summary Log in
// @Description Verify credentials and return a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Login payload"
// @Success 200 {object} response.Resp{data=sessionResp}
// @Failure 401 {object} response.Resp "Invalid credentials"
// @Router /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.Login: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSessionResp(out))
}

// AssignPatient links a caregiver to a patient.
// @Summary Assign a patient to a caregiver
// @Description Record that a caretaker or doctor is responsible for a patient. Requires the manage_patients capability.
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body assignReq true "Assignment payload"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp "Permission denied"
// @Failure 404 {object} response.Resp "User not found"
// @Router /patients/assign [POST]
func (h *handler) AssignPatient(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAssignRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	if err := h.uc.AssignPatient(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.AssignPatient: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// Detail returns one actor's profile.
// @Summary Get user detail
// @Description Fetch an actor by ID. Actors can read themselves; admins can read anyone.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Actor ID"
// @Success 200 {object} response.Resp{data=actorResp}
// @Failure 403 {object} response.Resp "Permission denied"
// @Failure 404 {object} response.Resp "User not found"
// @Router /users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scopeFromContext(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	actor, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.Detail: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newActorResp(actor))
}
