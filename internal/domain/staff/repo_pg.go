package staff

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usuarioRepoPG struct{ pool *pgxpool.Pool }

func NewUsuarioRepoPG(pool *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepoPG{pool: pool}
}

const usuarioCols = `u.id, u.nombre, u.apellido, u.telefono, u.email,
	u.fecha_nacimiento, u.sexo, u.rol_id, r.nombre AS rol_nombre`

func scanUsuario(row pgx.Row) (*UsuarioConRol, error) {
	var u UsuarioConRol
	err := row.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Telefono, &u.Email,
		&u.FechaNacimiento, &u.Sexo, &u.RolID, &u.RolNombre)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepoPG) List(ctx context.Context) ([]*UsuarioConRol, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+usuarioCols+`
		FROM usuarios u
		JOIN roles r ON r.id = u.rol_id
		ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*UsuarioConRol
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

func (r *usuarioRepoPG) Create(ctx context.Context, u *Usuario, contrasenaHash string) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, apellido, telefono, email, fecha_nacimiento, sexo, rol_id, contrasena_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		u.Nombre, u.Apellido, u.Telefono, u.Email, u.FechaNacimiento, u.Sexo, u.RolID, contrasenaHash).
		Scan(&u.ID)
}

func (r *usuarioRepoPG) GetCredencialByEmail(ctx context.Context, email string) (*Credencial, error) {
	var cred Credencial
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.nombre, u.apellido, u.email, u.contrasena_hash, r.nombre AS rol_nombre
		FROM usuarios u
		JOIN roles r ON r.id = u.rol_id
		WHERE u.email = $1`, email).
		Scan(&cred.ID, &cred.Nombre, &cred.Apellido, &cred.Email, &cred.ContrasenaHash, &cred.RolNombre)
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *usuarioRepoPG) UpdateContrasena(ctx context.Context, usuarioID int, contrasenaHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE usuarios SET contrasena_hash = $2 WHERE id = $1`, usuarioID, contrasenaHash)
	return err
}
