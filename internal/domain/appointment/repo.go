package appointment

import "context"

type CitaRepository interface {
	List(ctx context.Context) ([]*CitaDetalle, error)
	GetByID(ctx context.Context, id int) (*CitaDetalle, error)
	Create(ctx context.Context, c *Cita) error
	Update(ctx context.Context, c *Cita) error
	Delete(ctx context.Context, id int) error
}
