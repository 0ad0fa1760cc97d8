package usecase

import (
	"context"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/identity"
	"vitalguard-api/internal/identity/repository"
	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/encrypter"
	"vitalguard-api/pkg/scope"
)

func (uc *usecase) Register(ctx context.Context, ip identity.RegisterInput) (identity.SessionOutput, error) {
	if ip.Username == "" || ip.Password == "" {
		return identity.SessionOutput{}, identity.ErrFieldRequired
	}
	if !model.ValidRole(ip.Role) {
		return identity.SessionOutput{}, identity.ErrInvalidRole
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.identity.usecase.Register.HashPassword: %v", err)
		return identity.SessionOutput{}, err
	}

	actor := model.Actor{
		Username:     ip.Username,
		PasswordHash: &hash,
		Role:         ip.Role,
	}
	if ip.FullName != "" {
		actor.FullName = &ip.FullName
	}

	created, err := uc.repo.CreateActor(ctx, repository.CreateActorOptions{Actor: actor})
	if err != nil {
		if err == repository.ErrAlreadyExists {
			return identity.SessionOutput{}, identity.ErrUserExists
		}
		uc.l.Errorf(ctx, "internal.identity.usecase.Register.CreateActor: %v", err)
		return identity.SessionOutput{}, err
	}

	return uc.newSession(ctx, created)
}

func (uc *usecase) Login(ctx context.Context, ip identity.LoginInput) (identity.SessionOutput, error) {
	if ip.Username == "" || ip.Password == "" {
		return identity.SessionOutput{}, identity.ErrFieldRequired
	}

	actor, err := uc.repo.GetByUsername(ctx, ip.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return identity.SessionOutput{}, identity.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.identity.usecase.Login.GetByUsername: %v", err)
		return identity.SessionOutput{}, err
	}

	if actor.PasswordHash == nil || !encrypter.CheckPasswordHash(ip.Password, *actor.PasswordHash) {
		return identity.SessionOutput{}, identity.ErrInvalidCredentials
	}

	return uc.newSession(ctx, actor)
}

func (uc *usecase) newSession(ctx context.Context, actor model.Actor) (identity.SessionOutput, error) {
	token, err := uc.scope.CreateToken(scope.Payload{
		UserID:   actor.ID,
		Username: actor.Username,
		Role:     actor.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.identity.usecase.newSession.CreateToken: %v", err)
		return identity.SessionOutput{}, err
	}

	return identity.SessionOutput{Actor: actor, Token: token}, nil
}

func (uc *usecase) AssignPatient(ctx context.Context, sc model.Scope, ip identity.AssignPatientInput) error {
	if ip.CaregiverID == "" || ip.PatientID == "" {
		return identity.ErrFieldRequired
	}

	allowed, err := uc.guard.CanAccess(ctx, sc.UserID, ip.PatientID, access.CapManagePatients)
	if err != nil {
		uc.l.Errorf(ctx, "internal.identity.usecase.AssignPatient.CanAccess: %v", err)
		return err
	}
	if !allowed {
		return identity.ErrPermissionDenied
	}

	caregiver, err := uc.repo.GetByID(ctx, ip.CaregiverID)
	if err != nil {
		if err == repository.ErrNotFound {
			return identity.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.identity.usecase.AssignPatient.GetByID: %v", err)
		return err
	}
	if caregiver.Role != model.RoleCaretaker && caregiver.Role != model.RoleDoctor {
		return identity.ErrInvalidAssignment
	}

	patient, err := uc.repo.GetByID(ctx, ip.PatientID)
	if err != nil {
		if err == repository.ErrNotFound {
			return identity.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.identity.usecase.AssignPatient.GetByID: %v", err)
		return err
	}
	if patient.Role != model.RolePatient {
		return identity.ErrInvalidAssignment
	}

	if err := uc.repo.Assign(ctx, ip.CaregiverID, ip.PatientID); err != nil {
		uc.l.Errorf(ctx, "internal.identity.usecase.AssignPatient.Assign: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Actor, error) {
	if id != sc.UserID {
		allowed, err := uc.guard.CanAccess(ctx, sc.UserID, id, access.CapViewAllPatients)
		if err != nil {
			uc.l.Errorf(ctx, "internal.identity.usecase.Detail.CanAccess: %v", err)
			return model.Actor{}, err
		}
		if !allowed {
			return model.Actor{}, identity.ErrPermissionDenied
		}
	}

	actor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Actor{}, identity.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.identity.usecase.Detail.GetByID: %v", err)
		return model.Actor{}, err
	}

	return actor, nil
}
