package appointment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type citaRepoPG struct{ pool *pgxpool.Pool }

func NewCitaRepoPG(pool *pgxpool.Pool) CitaRepository {
	return &citaRepoPG{pool: pool}
}

const citaCols = `c.id, c.paciente_id, p.nombre AS nombre_paciente, p.apellido AS apellido_paciente,
	c.usuario_id, u.nombre AS nombre_medico, u.apellido AS apellido_medico,
	c.fecha_hora, c.estado, c.motivo`

const citaJoins = `FROM citas c
	JOIN pacientes p ON p.id = c.paciente_id
	JOIN usuarios u ON u.id = c.usuario_id`

func scanCita(row pgx.Row) (*CitaDetalle, error) {
	var c CitaDetalle
	err := row.Scan(&c.ID, &c.PacienteID, &c.NombrePaciente, &c.ApellidoPaciente,
		&c.UsuarioID, &c.NombreMedico, &c.ApellidoMedico,
		&c.FechaHora, &c.Estado, &c.Motivo)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *citaRepoPG) List(ctx context.Context) ([]*CitaDetalle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+citaCols+` `+citaJoins+` ORDER BY c.fecha_hora`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*CitaDetalle
	for rows.Next() {
		c, err := scanCita(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *citaRepoPG) GetByID(ctx context.Context, id int) (*CitaDetalle, error) {
	return scanCita(r.pool.QueryRow(ctx,
		`SELECT `+citaCols+` `+citaJoins+` WHERE c.id = $1`, id))
}

func (r *citaRepoPG) Create(ctx context.Context, c *Cita) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO citas (paciente_id, usuario_id, fecha_hora, estado, motivo)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		c.PacienteID, c.UsuarioID, c.FechaHora, c.Estado, c.Motivo).Scan(&c.ID)
}

func (r *citaRepoPG) Update(ctx context.Context, c *Cita) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE citas SET paciente_id=$2, usuario_id=$3, fecha_hora=$4, estado=$5, motivo=$6
		WHERE id = $1`,
		c.ID, c.PacienteID, c.UsuarioID, c.FechaHora, c.Estado, c.Motivo)
	return err
}

func (r *citaRepoPG) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM citas WHERE id = $1`, id)
	return err
}
