package schedule

import "context"

type HorarioRepository interface {
	List(ctx context.Context) ([]*HorarioConUsuario, error)
	GetByID(ctx context.Context, id int) (*HorarioConUsuario, error)
	Create(ctx context.Context, h *Horario) error
	Update(ctx context.Context, h *Horario) error
	Delete(ctx context.Context, id int) error
}
