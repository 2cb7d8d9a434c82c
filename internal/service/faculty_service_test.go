package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func TestFacultyService_List_FlattensCareers(t *testing.T) {
	repo, mocks := newTestRepos()
	svc := NewFacultyService(repo, zap.NewNop())

	mocks.faculties.faculties = []model.Faculty{
		{
			FacultyID: "f1",
			Name:      "Ciencias Matemáticas y Físicas",
			Careers: []model.Career{
				{CareerID: "c1", FacultyID: "f1", Name: "Ingeniería en Software"},
				{CareerID: "c2", FacultyID: "f1", Name: "Ingeniería Civil"},
			},
		},
		{FacultyID: "f2", Name: "Ciencias Médicas"},
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("listar facultades falló: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("esperaba 2 facultades, obtuve %d", len(got))
	}
	if len(got[0].Careers) != 2 || got[0].Careers[0] != "Ingeniería en Software" {
		t.Errorf("las carreras deben aplanarse a nombres: %+v", got[0].Careers)
	}
	if len(got[1].Careers) != 0 {
		t.Errorf("facultad sin carreras debe quedar con lista vacía: %+v", got[1].Careers)
	}
}
