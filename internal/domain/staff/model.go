package staff

import "time"

type Rol struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Usuario is the write model. Contrasena arrives in plaintext on create and
// is hashed before storage; it is cleared before the entity is echoed back.
type Usuario struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Sexo            string    `json:"sexo"`
	RolID           int       `json:"rol_id"`
	Contrasena      string    `json:"contrasena,omitempty"`
}

// UsuarioConRol is the read model: the role name is resolved by join and
// never stored on the usuarios row.
type UsuarioConRol struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Sexo            string    `json:"sexo"`
	RolID           int       `json:"rol_id"`
	RolNombre       string    `json:"rol_nombre"`
}

// Credencial is the login projection. It never leaves the service layer.
type Credencial struct {
	ID             int
	Nombre         string
	Apellido       string
	Email          string
	ContrasenaHash string
	RolNombre      string
}

type LoginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Rol       string `json:"rol"`
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
}

type RecuperarRequest struct {
	Email string `json:"email"`
}

type CambiarRequest struct {
	Token           string `json:"token"`
	NuevaContrasena string `json:"nueva_contrasena"`
}
