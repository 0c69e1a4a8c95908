package schedule

import (
	"context"
	"errors"
	"fmt"
)

var errInvalid = errors.New("invalid input")

type Service struct {
	horarios HorarioRepository
}

func NewService(horarios HorarioRepository) *Service {
	return &Service{horarios: horarios}
}

func validarHorario(h *Horario) error {
	if h.UsuarioID <= 0 {
		return fmt.Errorf("%w: usuario_id is required", errInvalid)
	}
	if !DiaSemanaValido(h.DiaSemana) {
		return fmt.Errorf("%w: dia_semana %q is not a valid day", errInvalid, h.DiaSemana)
	}
	if h.HoraInicio == "" || h.HoraFin == "" {
		return fmt.Errorf("%w: hora_inicio and hora_fin are required", errInvalid)
	}
	return nil
}

func (s *Service) ListHorarios(ctx context.Context) ([]*HorarioConUsuario, error) {
	return s.horarios.List(ctx)
}

func (s *Service) GetHorario(ctx context.Context, id int) (*HorarioConUsuario, error) {
	return s.horarios.GetByID(ctx, id)
}

func (s *Service) CreateHorario(ctx context.Context, h *Horario) error {
	if err := validarHorario(h); err != nil {
		return err
	}
	return s.horarios.Create(ctx, h)
}

func (s *Service) UpdateHorario(ctx context.Context, h *Horario) error {
	if err := validarHorario(h); err != nil {
		return err
	}
	return s.horarios.Update(ctx, h)
}

func (s *Service) DeleteHorario(ctx context.Context, id int) error {
	return s.horarios.Delete(ctx, id)
}
