package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func setupTestUserService() (UserService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewUserService(repo, zap.NewNop())
	return svc, mocks
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, mocks := setupTestUserService()

	resp, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Marta Ríos",
		Email:    "marta.rios@ug.edu.ec",
		Password: "secreto123",
		Role:     model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("crear usuario falló: %v", err)
	}
	stored := mocks.users.users[resp.ID]
	if stored == nil {
		t.Fatalf("el usuario no quedó guardado")
	}
	if stored.PasswordHash == "secreto123" {
		t.Errorf("la contraseña debe guardarse con hash")
	}
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	svc, mocks := setupTestUserService()
	mocks.users.users["u1"] = &model.User{UserID: "u1", Email: "marta.rios@ug.edu.ec", Role: model.RoleAdmin, IsActive: true}

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Marta Ríos",
		Email:    "marta.rios@ug.edu.ec",
		Password: "secreto123",
		Role:     model.RoleAdmin,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("esperaba ErrEmailTaken, obtuve %v", err)
	}
}

func TestUserService_SetActive(t *testing.T) {
	svc, mocks := setupTestUserService()
	mocks.users.users["u1"] = &model.User{UserID: "u1", Email: "marta.rios@ug.edu.ec", Role: model.RoleAdmin, IsActive: true}

	if err := svc.SetActive(context.Background(), "u1", false); err != nil {
		t.Fatalf("desactivar falló: %v", err)
	}
	if mocks.users.users["u1"].IsActive {
		t.Errorf("el usuario debe quedar inactivo")
	}

	if err := svc.SetActive(context.Background(), "no-existe", false); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperaba ErrUserNotFound, obtuve %v", err)
	}
}

func TestUserService_Search_ByRole(t *testing.T) {
	svc, mocks := setupTestUserService()
	mocks.users.users["u1"] = &model.User{UserID: "u1", Name: "Ana", Email: "ana@ug.edu.ec", Role: model.RoleStudent, IsActive: true}
	mocks.users.users["u2"] = &model.User{UserID: "u2", Name: "Carlos", Email: "carlos@deporte.org", Role: model.RoleOrganizer, IsActive: true}

	got, err := svc.Search(context.Background(), &dto.UserSearchRequest{Role: model.RoleOrganizer})
	if err != nil {
		t.Fatalf("búsqueda falló: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Carlos" {
		t.Errorf("el rol debe filtrar con igualdad exacta: %+v", got)
	}
}
