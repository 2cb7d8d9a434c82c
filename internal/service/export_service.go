package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

var (
	ErrExportNoEnrollments = errors.New("la actividad no tiene inscripciones")
	ErrExportGenerateFail  = errors.New("no se pudo generar el archivo Excel")
)

// ExportService builds the downloadable reports. The buffer is returned
// to the handler, which sets the HTTP headers and streams it out.
type ExportService interface {
	// ExportEnrollments exports the enrollment list of one activity as
	// an .xlsx attendance sheet. Organizers only export their own
	// activities; admins any.
	ExportEnrollments(ctx context.Context, actorID, actorRole, activityID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService builds the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportEnrollments(ctx context.Context, actorID, actorRole, activityID string) (*bytes.Buffer, string, error) {
	act, err := s.repo.Activity.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrActivityNotFound
		}
		s.logger.Error("consultar actividad para exportar falló", zap.Error(err))
		return nil, "", err
	}
	if actorRole != model.RoleAdmin && act.OrganizerID != actorID {
		return nil, "", ErrNotActivityOwner
	}

	list, err := s.repo.Enrollment.ListByActivity(ctx, activityID)
	if err != nil {
		s.logger.Error("consultar inscripciones para exportar falló", zap.Error(err))
		return nil, "", err
	}
	if len(list) == 0 {
		return nil, "", ErrExportNoEnrollments
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Inscripciones"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 35)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %s", act.Title, act.Date.Format(dayFormat)))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"N°", "Estudiante", "Correo", "Fecha de inscripción", "Estado", "Nota"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 2), h)
		f.SetCellStyle(sheetName, cell(col, 2), cell(col, 2), headerStyle)
	}

	row := 3
	for n, e := range list {
		name, email := "", ""
		if e.Student != nil {
			name = e.Student.Name
			email = e.Student.Email
		}
		f.SetCellValue(sheetName, cell("A", row), n+1)
		f.SetCellValue(sheetName, cell("B", row), name)
		f.SetCellValue(sheetName, cell("C", row), email)
		f.SetCellValue(sheetName, cell("D", row), e.EnrollmentDate.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, cell("E", row), e.Status)
		f.SetCellValue(sheetName, cell("F", row), e.Note)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("escribir Excel falló", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("inscripciones_%s_%s.xlsx", act.ActivityID[:8], time.Now().Format(dayFormat))
	return buf, filename, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
