package entity

import "time"

// Sesion es el registro del lado servidor de una sesión de consola:
// token opaco más el snapshot del perfil con el que se emitió.
// Se crea en el login y se destruye en el logout o cuando la revalidación falla.
type Sesion struct {
	Token     string
	Perfil    Usuario
	CreatedAt time.Time
}
