package exam

import (
	"context"
	"errors"
	"fmt"
)

var errInvalid = errors.New("invalid input")

type Service struct {
	examenes ExamenRepository
}

func NewService(examenes ExamenRepository) *Service {
	return &Service{examenes: examenes}
}

func (s *Service) ListPerfiles(ctx context.Context) ([]*PerfilExamen, error) {
	return s.examenes.ListPerfiles(ctx)
}

func (s *Service) ListExamenes(ctx context.Context) ([]*Examen, error) {
	return s.examenes.ListExamenes(ctx)
}

func (s *Service) ListExamenesByPerfil(ctx context.Context, perfilID int) ([]*Examen, error) {
	return s.examenes.ListExamenesByPerfil(ctx, perfilID)
}

func (s *Service) ListResultados(ctx context.Context, diagnosticoID int) ([]*ResultadoConExamen, error) {
	return s.examenes.ListResultadosByDiagnostico(ctx, diagnosticoID)
}

func (s *Service) AddResultados(ctx context.Context, diagnosticoID int, items []ResultadoExamen) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: resultados are required", errInvalid)
	}
	for _, item := range items {
		if item.ExamenID <= 0 {
			return fmt.Errorf("%w: examen_id is required", errInvalid)
		}
	}
	return s.examenes.AddResultados(ctx, diagnosticoID, items)
}
