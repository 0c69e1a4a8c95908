package record

import "context"

type ExpedienteRepository interface {
	GetByPaciente(ctx context.Context, pacienteID int) (*Expediente, error)
	Create(ctx context.Context, pacienteID int) (*Expediente, error)
	ListDiagnosticos(ctx context.Context, pacienteID int) ([]*Diagnostico, error)
	CreateDiagnostico(ctx context.Context, pacienteID int, d *Diagnostico) error
}
