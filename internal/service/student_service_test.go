package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func setupTestStudentService() (StudentService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewStudentService(repo, zap.NewNop())
	return svc, mocks
}

func validCreateStudent() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:     "Ana Mora",
		Email:    "ana.mora@ug.edu.ec",
		Password: "secreto123",
		Faculty:  "Ciencias Matemáticas y Físicas",
		Career:   "Ingeniería en Software",
		Semester: 5,
		Modality: "Presencial",
		Schedule: "Matutina",
	}
}

func TestStudentService_Create_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	resp, err := svc.Create(context.Background(), validCreateStudent())
	if err != nil {
		t.Fatalf("crear estudiante falló: %v", err)
	}
	if resp.Name != "Ana Mora" || resp.Career != "Ingeniería en Software" {
		t.Errorf("respuesta inesperada: %+v", resp)
	}
	if !resp.IsActive {
		t.Errorf("un estudiante nuevo debe nacer activo")
	}
}

func TestStudentService_Create_RejectsExternalDomain(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := validCreateStudent()
	req.Email = "ana.mora@hotmail.com"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidStudentEmail) {
		t.Errorf("esperaba ErrInvalidStudentEmail, obtuve %v", err)
	}
}

func TestStudentService_Create_EmailTaken(t *testing.T) {
	svc, mocks := setupTestStudentService()
	mocks.users.users["u1"] = &model.User{UserID: "u1", Email: "ana.mora@ug.edu.ec", Role: model.RoleStudent, IsActive: true}

	if _, err := svc.Create(context.Background(), validCreateStudent()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("esperaba ErrEmailTaken, obtuve %v", err)
	}
}

func TestStudentService_UpdateProfile(t *testing.T) {
	svc, _ := setupTestStudentService()

	created, err := svc.Create(context.Background(), validCreateStudent())
	if err != nil {
		t.Fatalf("crear estudiante falló: %v", err)
	}

	semester := 6
	modality := "Virtual"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Semester: &semester,
		Modality: &modality,
	})
	if err != nil {
		t.Fatalf("actualizar perfil falló: %v", err)
	}
	if updated.Semester != 6 || updated.Modality != "Virtual" {
		t.Errorf("perfil tras editar: %+v", updated)
	}
	if updated.Faculty != "Ciencias Matemáticas y Físicas" {
		t.Errorf("los campos no enviados deben conservarse: %q", updated.Faculty)
	}
}

func TestStudentService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	if _, err := svc.GetByID(context.Background(), "no-existe"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("esperaba ErrStudentNotFound, obtuve %v", err)
	}
}

func TestStudentService_Search_ByFacultyAndCareer(t *testing.T) {
	svc, _ := setupTestStudentService()

	if _, err := svc.Create(context.Background(), validCreateStudent()); err != nil {
		t.Fatalf("crear estudiante falló: %v", err)
	}
	other := validCreateStudent()
	other.Email = "luis.paz@ug.edu.ec"
	other.Name = "Luis Paz"
	other.Career = "Medicina"
	other.Faculty = "Ciencias Médicas"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("crear estudiante falló: %v", err)
	}

	got, err := svc.Search(context.Background(), &dto.StudentSearchRequest{Career: "software"})
	if err != nil {
		t.Fatalf("búsqueda falló: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ana Mora" {
		t.Errorf("la carrera debe coincidir sin distinguir mayúsculas: %+v", got)
	}
}
