package record

import (
	"context"
	"errors"
	"fmt"
)

var errInvalid = errors.New("invalid input")

type Service struct {
	expedientes ExpedienteRepository
}

func NewService(expedientes ExpedienteRepository) *Service {
	return &Service{expedientes: expedientes}
}

func (s *Service) GetExpediente(ctx context.Context, pacienteID int) (*Expediente, error) {
	return s.expedientes.GetByPaciente(ctx, pacienteID)
}

func (s *Service) CreateExpediente(ctx context.Context, pacienteID int) (*Expediente, error) {
	return s.expedientes.Create(ctx, pacienteID)
}

func (s *Service) ListDiagnosticos(ctx context.Context, pacienteID int) ([]*Diagnostico, error) {
	return s.expedientes.ListDiagnosticos(ctx, pacienteID)
}

func (s *Service) CreateDiagnostico(ctx context.Context, pacienteID int, d *Diagnostico) error {
	if d.Diagnostico == "" {
		return fmt.Errorf("%w: diagnostico is required", errInvalid)
	}
	return s.expedientes.CreateDiagnostico(ctx, pacienteID, d)
}
