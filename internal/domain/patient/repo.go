package patient

import "context"

type PacienteRepository interface {
	List(ctx context.Context) ([]*PacienteConEdad, error)
	GetByID(ctx context.Context, id int) (*PacienteConEdad, error)
	Create(ctx context.Context, p *Paciente) error
	Update(ctx context.Context, p *Paciente) error
	Delete(ctx context.Context, id int) error
}
