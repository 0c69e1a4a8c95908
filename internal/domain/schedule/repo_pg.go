package schedule

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type horarioRepoPG struct{ pool *pgxpool.Pool }

func NewHorarioRepoPG(pool *pgxpool.Pool) HorarioRepository {
	return &horarioRepoPG{pool: pool}
}

const horarioCols = `h.id, h.usuario_id, u.nombre AS nombre_usuario, u.apellido AS apellido_usuario,
	h.dia_semana, to_char(h.hora_inicio, 'HH24:MI') AS hora_inicio, to_char(h.hora_fin, 'HH24:MI') AS hora_fin`

func scanHorario(row pgx.Row) (*HorarioConUsuario, error) {
	var h HorarioConUsuario
	err := row.Scan(&h.ID, &h.UsuarioID, &h.NombreUsuario, &h.ApellidoUsuario,
		&h.DiaSemana, &h.HoraInicio, &h.HoraFin)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepoPG) List(ctx context.Context) ([]*HorarioConUsuario, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+horarioCols+`
		FROM horarios h
		JOIN usuarios u ON u.id = h.usuario_id
		ORDER BY h.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*HorarioConUsuario
	for rows.Next() {
		h, err := scanHorario(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *horarioRepoPG) GetByID(ctx context.Context, id int) (*HorarioConUsuario, error) {
	return scanHorario(r.pool.QueryRow(ctx, `
		SELECT `+horarioCols+`
		FROM horarios h
		JOIN usuarios u ON u.id = h.usuario_id
		WHERE h.id = $1`, id))
}

func (r *horarioRepoPG) Create(ctx context.Context, h *Horario) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO horarios (usuario_id, dia_semana, hora_inicio, hora_fin)
		VALUES ($1, $2, $3::time, $4::time) RETURNING id`,
		h.UsuarioID, h.DiaSemana, h.HoraInicio, h.HoraFin).Scan(&h.ID)
}

func (r *horarioRepoPG) Update(ctx context.Context, h *Horario) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE horarios SET usuario_id=$2, dia_semana=$3, hora_inicio=$4::time, hora_fin=$5::time
		WHERE id = $1`,
		h.ID, h.UsuarioID, h.DiaSemana, h.HoraInicio, h.HoraFin)
	return err
}

func (r *horarioRepoPG) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM horarios WHERE id = $1`, id)
	return err
}
