package exam

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type examenRepoPG struct{ pool *pgxpool.Pool }

func NewExamenRepoPG(pool *pgxpool.Pool) ExamenRepository {
	return &examenRepoPG{pool: pool}
}

const examenCols = `e.id, e.perfil_id, p.nombre AS perfil_nombre, e.nombre, e.referencia_resultado`

func scanExamen(row pgx.Row) (*Examen, error) {
	var e Examen
	err := row.Scan(&e.ID, &e.PerfilID, &e.PerfilNombre, &e.Nombre, &e.ReferenciaResultado)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectExamenes(rows pgx.Rows) ([]*Examen, error) {
	defer rows.Close()
	var items []*Examen
	for rows.Next() {
		e, err := scanExamen(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *examenRepoPG) ListPerfiles(ctx context.Context) ([]*PerfilExamen, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre FROM perfiles_examenes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PerfilExamen
	for rows.Next() {
		var p PerfilExamen
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *examenRepoPG) ListExamenes(ctx context.Context) ([]*Examen, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+examenCols+`
		FROM examenes e
		JOIN perfiles_examenes p ON p.id = e.perfil_id
		ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	return collectExamenes(rows)
}

func (r *examenRepoPG) ListExamenesByPerfil(ctx context.Context, perfilID int) ([]*Examen, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+examenCols+`
		FROM examenes e
		JOIN perfiles_examenes p ON p.id = e.perfil_id
		WHERE e.perfil_id = $1
		ORDER BY e.id`, perfilID)
	if err != nil {
		return nil, err
	}
	return collectExamenes(rows)
}

func (r *examenRepoPG) ListResultadosByDiagnostico(ctx context.Context, diagnosticoID int) ([]*ResultadoConExamen, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ed.id, ed.diagnostico_id, ed.examen_id, e.nombre AS nombre_examen, ed.resultado
		FROM examenes_por_diagnostico ed
		JOIN examenes e ON e.id = ed.examen_id
		WHERE ed.diagnostico_id = $1
		ORDER BY ed.id`, diagnosticoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ResultadoConExamen
	for rows.Next() {
		var res ResultadoConExamen
		err := rows.Scan(&res.ID, &res.DiagnosticoID, &res.ExamenID, &res.NombreExamen, &res.Resultado)
		if err != nil {
			return nil, err
		}
		items = append(items, &res)
	}
	return items, rows.Err()
}

// AddResultados checks the diagnosis exists and inserts every row in one
// transaction; either all results land or none do. No uniqueness is imposed
// on (diagnostico_id, examen_id).
func (r *examenRepoPG) AddResultados(ctx context.Context, diagnosticoID int, items []ResultadoExamen) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists int
	if err := tx.QueryRow(ctx,
		`SELECT id FROM expedientes_diagnosticos WHERE id = $1`, diagnosticoID).Scan(&exists); err != nil {
		return err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO examenes_por_diagnostico (diagnostico_id, examen_id, resultado)
			VALUES ($1, $2, $3)`,
			diagnosticoID, item.ExamenID, item.Resultado); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
