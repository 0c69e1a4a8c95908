package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pacienteRepoPG struct{ pool *pgxpool.Pool }

func NewPacienteRepoPG(pool *pgxpool.Pool) PacienteRepository {
	return &pacienteRepoPG{pool: pool}
}

// The age projection is computed by the storage engine at query time; it is
// never stored or cached.
const pacienteCols = `id, nombre, apellido, ci, telefono, email, fecha_nacimiento, sexo,
	EXTRACT(YEAR FROM AGE(fecha_nacimiento))::INT AS edad`

func scanPaciente(row pgx.Row) (*PacienteConEdad, error) {
	var p PacienteConEdad
	err := row.Scan(&p.ID, &p.Nombre, &p.Apellido, &p.CI, &p.Telefono,
		&p.Email, &p.FechaNacimiento, &p.Sexo, &p.Edad)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pacienteRepoPG) List(ctx context.Context) ([]*PacienteConEdad, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+pacienteCols+` FROM pacientes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PacienteConEdad
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *pacienteRepoPG) GetByID(ctx context.Context, id int) (*PacienteConEdad, error) {
	return scanPaciente(r.pool.QueryRow(ctx,
		`SELECT `+pacienteCols+` FROM pacientes WHERE id = $1`, id))
}

func (r *pacienteRepoPG) Create(ctx context.Context, p *Paciente) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO pacientes (nombre, apellido, ci, telefono, email, fecha_nacimiento, sexo)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		p.Nombre, p.Apellido, p.CI, p.Telefono, p.Email, p.FechaNacimiento, p.Sexo).
		Scan(&p.ID)
}

func (r *pacienteRepoPG) Update(ctx context.Context, p *Paciente) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE pacientes SET nombre=$2, apellido=$3, ci=$4, telefono=$5, email=$6,
			fecha_nacimiento=$7, sexo=$8
		WHERE id = $1`,
		p.ID, p.Nombre, p.Apellido, p.CI, p.Telefono, p.Email, p.FechaNacimiento, p.Sexo)
	return err
}

func (r *pacienteRepoPG) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pacientes WHERE id = $1`, id)
	return err
}
