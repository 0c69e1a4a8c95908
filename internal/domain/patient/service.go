package patient

import (
	"context"
	"errors"
	"fmt"
)

// errInvalid marks input-validation failures so handlers can map them to 400.
var errInvalid = errors.New("invalid input")

type Service struct {
	pacientes PacienteRepository
}

func NewService(pacientes PacienteRepository) *Service {
	return &Service{pacientes: pacientes}
}

func validarPaciente(p *Paciente) error {
	if p.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", errInvalid)
	}
	if p.Apellido == "" {
		return fmt.Errorf("%w: apellido is required", errInvalid)
	}
	if p.CI == "" {
		return fmt.Errorf("%w: ci is required", errInvalid)
	}
	if p.FechaNacimiento.IsZero() {
		return fmt.Errorf("%w: fecha_nacimiento is required", errInvalid)
	}
	return nil
}

func (s *Service) ListPacientes(ctx context.Context) ([]*PacienteConEdad, error) {
	return s.pacientes.List(ctx)
}

func (s *Service) GetPaciente(ctx context.Context, id int) (*PacienteConEdad, error) {
	return s.pacientes.GetByID(ctx, id)
}

func (s *Service) CreatePaciente(ctx context.Context, p *Paciente) error {
	if err := validarPaciente(p); err != nil {
		return err
	}
	return s.pacientes.Create(ctx, p)
}

// UpdatePaciente is a full-row replace; last writer wins.
func (s *Service) UpdatePaciente(ctx context.Context, p *Paciente) error {
	if err := validarPaciente(p); err != nil {
		return err
	}
	return s.pacientes.Update(ctx, p)
}

// DeletePaciente is idempotent: deleting an id that no longer exists is not
// distinguished from deleting one that does.
func (s *Service) DeletePaciente(ctx context.Context, id int) error {
	return s.pacientes.Delete(ctx, id)
}
