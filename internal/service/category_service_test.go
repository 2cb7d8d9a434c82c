package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func setupTestCategoryService() (CategoryService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewCategoryService(repo, zap.NewNop())
	return svc, mocks
}

func TestCategoryService_Create_Success(t *testing.T) {
	svc, _ := setupTestCategoryService()

	resp, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Deportes"})
	if err != nil {
		t.Fatalf("crear categoría falló: %v", err)
	}
	if resp.Name != "Deportes" || !resp.IsActive {
		t.Errorf("respuesta inesperada: %+v", resp)
	}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	svc, _ := setupTestCategoryService()

	if _, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Deportes"}); err != nil {
		t.Fatalf("crear categoría falló: %v", err)
	}
	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "deportes"})
	if !errors.Is(err, ErrCategoryExists) {
		t.Errorf("el nombre debe ser único sin distinguir mayúsculas, obtuve %v", err)
	}
}

func TestCategoryService_Update_RenameConflict(t *testing.T) {
	svc, _ := setupTestCategoryService()

	a, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Deportes"})
	if err != nil {
		t.Fatalf("crear categoría falló: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Cultura"}); err != nil {
		t.Fatalf("crear categoría falló: %v", err)
	}

	name := "Cultura"
	if _, err := svc.Update(context.Background(), a.ID, &dto.UpdateCategoryRequest{Name: &name}); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("renombrar hacia un nombre ocupado debe fallar, obtuve %v", err)
	}

	// renombrar hacia sí misma no es conflicto
	same := "Deportes"
	if _, err := svc.Update(context.Background(), a.ID, &dto.UpdateCategoryRequest{Name: &same}); err != nil {
		t.Errorf("conservar el nombre propio no debe fallar: %v", err)
	}
}

func TestCategoryService_SetActive_NotFound(t *testing.T) {
	svc, _ := setupTestCategoryService()

	if err := svc.SetActive(context.Background(), "no-existe", false); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("esperaba ErrCategoryNotFound, obtuve %v", err)
	}
}

func TestCategoryService_List_ExcludesInactiveByDefault(t *testing.T) {
	svc, mocks := setupTestCategoryService()
	mocks.categories.categories["c1"] = &model.Category{CategoryID: "c1", Name: "Deportes", IsActive: true}
	mocks.categories.categories["c2"] = &model.Category{CategoryID: "c2", Name: "Cultura", IsActive: false}

	got, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("listar falló: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Deportes" {
		t.Errorf("las inactivas no deben listarse por defecto: %+v", got)
	}

	all, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("listar falló: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("con include_inactive deben salir todas, obtuve %d", len(all))
	}
}
