package http

import (
	"time"

	"vitalguard-api/internal/identity"
	"vitalguard-api/internal/model"
)

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required"`
}

func (req registerReq) toInput() identity.RegisterInput {
	return identity.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req loginReq) toInput() identity.LoginInput {
	return identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}
}

type assignReq struct {
	CaregiverID string `json:"caregiver_id" binding:"required"`
	PatientID   string `json:"patient_id" binding:"required"`
}

func (req assignReq) toInput() identity.AssignPatientInput {
	return identity.AssignPatientInput{
		CaregiverID: req.CaregiverID,
		PatientID:   req.PatientID,
	}
}

type actorResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newActorResp(actor model.Actor) actorResp {
	resp := actorResp{
		ID:        actor.ID,
		Username:  actor.Username,
		Role:      actor.Role,
		CreatedAt: actor.CreatedAt,
	}
	if actor.FullName != nil {
		resp.FullName = *actor.FullName
	}
	return resp
}

type sessionResp struct {
	Actor actorResp `json:"actor"`
	Token string    `json:"token"`
}

func newSessionResp(out identity.SessionOutput) sessionResp {
	return sessionResp{
		Actor: newActorResp(out.Actor),
		Token: out.Token,
	}
}
