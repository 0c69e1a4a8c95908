package appointment

import (
	"context"
	"errors"
	"fmt"
)

var errInvalid = errors.New("invalid input")

type Service struct {
	citas CitaRepository
}

func NewService(citas CitaRepository) *Service {
	return &Service{citas: citas}
}

func validarCita(c *Cita) error {
	if c.PacienteID <= 0 {
		return fmt.Errorf("%w: paciente_id is required", errInvalid)
	}
	if c.UsuarioID <= 0 {
		return fmt.Errorf("%w: usuario_id is required", errInvalid)
	}
	if c.FechaHora.IsZero() {
		return fmt.Errorf("%w: fecha_hora is required", errInvalid)
	}
	if !EstadoValido(c.Estado) {
		return fmt.Errorf("%w: estado %q is not valid", errInvalid, c.Estado)
	}
	return nil
}

func (s *Service) ListCitas(ctx context.Context) ([]*CitaDetalle, error) {
	return s.citas.List(ctx)
}

func (s *Service) GetCita(ctx context.Context, id int) (*CitaDetalle, error) {
	return s.citas.GetByID(ctx, id)
}

func (s *Service) CreateCita(ctx context.Context, c *Cita) error {
	if c.Estado == "" {
		c.Estado = EstadoPendiente
	}
	if err := validarCita(c); err != nil {
		return err
	}
	return s.citas.Create(ctx, c)
}

func (s *Service) UpdateCita(ctx context.Context, c *Cita) error {
	if err := validarCita(c); err != nil {
		return err
	}
	return s.citas.Update(ctx, c)
}

func (s *Service) DeleteCita(ctx context.Context, id int) error {
	return s.citas.Delete(ctx, id)
}
