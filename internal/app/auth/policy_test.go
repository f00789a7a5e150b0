package auth

import (
	"errors"
	"testing"

	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

var (
	student = Actor{ID: 1, Role: models.RoleStudent}
	teacher = Actor{ID: 2, Role: models.RoleTeacher}
	admin   = Actor{ID: 3, Role: models.RoleAdmin}
)

func TestEvaluateRoles(t *testing.T) {
	policy := Policy{Roles: []models.Role{models.RoleTeacher, models.RoleAdmin}}

	if err := Evaluate(student, policy, 0, 0); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student: error = %v, want ErrPermissionDenied", err)
	}
	if err := Evaluate(teacher, policy, 0, 0); err != nil {
		t.Errorf("teacher: unexpected error %v", err)
	}
	if err := Evaluate(admin, policy, 0, 0); err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
}

func TestEvaluateEmptyRolesAllowsAnyone(t *testing.T) {
	policy := Policy{}
	for _, actor := range []Actor{student, teacher, admin} {
		if err := Evaluate(actor, policy, 0, 0); err != nil {
			t.Errorf("role %s: unexpected error %v", actor.Role, err)
		}
	}
}

func TestEvaluateOwnership(t *testing.T) {
	policy := Policy{Ownership: true}

	if err := Evaluate(student, policy, student.ID, 0); err != nil {
		t.Errorf("owner: unexpected error %v", err)
	}
	if err := Evaluate(student, policy, teacher.ID, 0); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner: error = %v, want ErrPermissionDenied", err)
	}
	// Admins bypass ownership
	if err := Evaluate(admin, policy, student.ID, 0); err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
}

func TestEvaluateDenySelf(t *testing.T) {
	policy := Policy{DenySelf: true}

	if err := Evaluate(admin, policy, 0, admin.ID); !errors.Is(err, apperrors.ErrSelfDeletion) {
		t.Errorf("admin self: error = %v, want ErrSelfDeletion", err)
	}
	if err := Evaluate(admin, policy, 0, student.ID); err != nil {
		t.Errorf("admin on other: unexpected error %v", err)
	}
}

func TestEvaluateDenySelfBeforeOwnership(t *testing.T) {
	// An admin owns enough to pass ownership on their own account, so
	// self-protection must win.
	policy := Policy{Ownership: true, DenySelf: true}
	if err := Evaluate(admin, policy, admin.ID, admin.ID); !errors.Is(err, apperrors.ErrSelfDeletion) {
		t.Errorf("error = %v, want ErrSelfDeletion", err)
	}
}

func TestCanAccessOwned(t *testing.T) {
	if err := CanAccessOwned(student, student.ID); err != nil {
		t.Errorf("owner: unexpected error %v", err)
	}
	if err := CanAccessOwned(student, admin.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner: error = %v, want ErrPermissionDenied", err)
	}
	if err := CanAccessOwned(admin, student.ID); err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
}

func TestCheckSelfDeletion(t *testing.T) {
	if err := CheckSelfDeletion(student, student.ID); !errors.Is(err, apperrors.ErrSelfDeletion) {
		t.Errorf("self: error = %v, want ErrSelfDeletion", err)
	}
	if err := CheckSelfDeletion(admin, student.ID); err != nil {
		t.Errorf("other: unexpected error %v", err)
	}
}
