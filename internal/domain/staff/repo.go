package staff

import "context"

type UsuarioRepository interface {
	List(ctx context.Context) ([]*UsuarioConRol, error)
	Create(ctx context.Context, u *Usuario, contrasenaHash string) error
	GetCredencialByEmail(ctx context.Context, email string) (*Credencial, error)
	UpdateContrasena(ctx context.Context, usuarioID int, contrasenaHash string) error
}
