package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cliniclab/cliniclab/internal/platform/auth"
	"github.com/cliniclab/cliniclab/internal/platform/db"
	"github.com/cliniclab/cliniclab/internal/platform/notification"
)

var (
	errInvalid = errors.New("invalid input")

	// ErrUnauthorized covers every credential failure. The message is the
	// same whether the email is unknown, the password is wrong, or a token
	// is bad; detail goes to the log only.
	ErrUnauthorized = errors.New("unauthorized")
)

type Service struct {
	usuarios  UsuarioRepository
	tokens    *auth.TokenService
	sender    notification.EmailSender
	templates *notification.TemplateEngine
	log       zerolog.Logger
}

func NewService(usuarios UsuarioRepository, tokens *auth.TokenService,
	sender notification.EmailSender, log zerolog.Logger) *Service {
	return &Service{
		usuarios:  usuarios,
		tokens:    tokens,
		sender:    sender,
		templates: notification.NewTemplateEngine(),
		log:       log,
	}
}

func (s *Service) ListUsuarios(ctx context.Context) ([]*UsuarioConRol, error) {
	return s.usuarios.List(ctx)
}

func (s *Service) CreateUsuario(ctx context.Context, u *Usuario) error {
	switch {
	case u.Nombre == "":
		return fmt.Errorf("%w: nombre is required", errInvalid)
	case u.Apellido == "":
		return fmt.Errorf("%w: apellido is required", errInvalid)
	case u.Email == "":
		return fmt.Errorf("%w: email is required", errInvalid)
	case u.RolID <= 0:
		return fmt.Errorf("%w: rol_id is required", errInvalid)
	case u.Contrasena == "":
		return fmt.Errorf("%w: contrasena is required", errInvalid)
	}

	hash, err := auth.HashPassword(u.Contrasena)
	if err != nil {
		return err
	}
	if err := s.usuarios.Create(ctx, u, hash); err != nil {
		return err
	}
	u.Contrasena = ""
	return nil
}

func (s *Service) Login(ctx context.Context, email, contrasena string) (*LoginResponse, error) {
	cred, err := s.usuarios.GetCredencialByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			s.log.Info().Str("email", email).Msg("login attempt for unknown email")
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	ok, err := auth.CheckPassword(contrasena, cred.ContrasenaHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info().Str("email", email).Msg("login attempt with wrong password")
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.Issue(cred.Email, cred.RolNombre, cred.ID, auth.SessionTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:     token,
		Rol:       cred.RolNombre,
		UsuarioID: cred.ID,
		Nombre:    cred.Nombre,
		Apellido:  cred.Apellido,
	}, nil
}

// RequestRecovery issues a short-lived reset token and hands it to the mail
// sender. Delivery failures are logged, not surfaced; the caller always gets
// the same confirmation.
func (s *Service) RequestRecovery(ctx context.Context, email string) error {
	cred, err := s.usuarios.GetCredencialByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return fmt.Errorf("%w: email no registrado", errInvalid)
		}
		return err
	}

	token, err := s.tokens.Issue(cred.Email, auth.RecoveryRole, cred.ID, auth.RecoveryTTL)
	if err != nil {
		return err
	}

	subject, body, err := s.templates.Render(notification.TemplateRecuperarContrasena,
		map[string]string{"token": token})
	if err != nil {
		return err
	}
	if err := s.sender.SendEmail(ctx, cred.Email, subject, body); err != nil {
		s.log.Error().Err(err).Str("email", cred.Email).Msg("recovery email delivery failed")
	}
	return nil
}

// CompleteRecovery accepts only tokens carrying the recovery role; a session
// token cannot be replayed as a reset credential.
func (s *Service) CompleteRecovery(ctx context.Context, token, nuevaContrasena string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Info().Err(err).Msg("recovery token rejected")
		return ErrUnauthorized
	}
	if claims.Rol != auth.RecoveryRole {
		s.log.Info().Int("usuario_id", claims.UsuarioID).Msg("non-recovery token used for password reset")
		return ErrUnauthorized
	}

	hash, err := auth.HashPassword(nuevaContrasena)
	if err != nil {
		return err
	}
	return s.usuarios.UpdateContrasena(ctx, claims.UsuarioID, hash)
}
