// Package rol es la única fuente de verdad del mapeo rol → módulos de la
// consola GETLA. El sidebar y el middleware HTTP consultan esta tabla; no
// existe otra copia del mapeo.
package rol

// Módulos de la consola, en el orden canónico del sidebar.
const (
	ModuloUsuarios   = "usuarios"
	ModuloCabeceras  = "cabeceras"
	ModuloClientes   = "clientes"
	ModuloFacturas   = "facturas"
	ModuloRepuestos  = "repuestos"
	ModuloDotacion   = "dotacion"
	ModuloLimpieza   = "limpieza"
	ModuloMantencion = "mantencion"
)

// Todos devuelve los módulos en orden canónico.
func Todos() []string {
	return []string{
		ModuloUsuarios,
		ModuloCabeceras,
		ModuloClientes,
		ModuloFacturas,
		ModuloRepuestos,
		ModuloDotacion,
		ModuloLimpieza,
		ModuloMantencion,
	}
}

// tabla de permisos por rol. "admin" no aparece: pasa por encima de la tabla
// y siempre obtiene el conjunto completo. Un rol ausente resuelve a vacío.
var tabla = map[string][]string{
	"adminrep":  {ModuloRepuestos},
	"admindot":  {ModuloDotacion},
	"adminlimp": {ModuloLimpieza},
	"adminmant": {ModuloMantencion},
	"regular":   {ModuloRepuestos},
}

// rutas de aterrizaje tras el login, por rol.
var aterrizaje = map[string]string{
	"admin":     "/admin",
	"adminrep":  "/repuestos",
	"admindot":  "/dotacion",
	"adminlimp": "/limpieza",
	"adminmant": "/mantencion",
	"regular":   "/repuestos",
}

// Permitidos devuelve la lista ordenada de módulos accesibles para el rol.
// admin siempre recibe el conjunto completo; un rol no reconocido recibe vacío.
func Permitidos(r string) []string {
	if r == "admin" {
		return Todos()
	}
	mods, ok := tabla[r]
	if !ok {
		return nil
	}
	out := make([]string, len(mods))
	copy(out, mods)
	return out
}

// Permitido indica si el rol puede acceder al módulo.
func Permitido(r, modulo string) bool {
	for _, m := range Permitidos(r) {
		if m == modulo {
			return true
		}
	}
	return false
}

// Entrada es una fila del menú del sidebar. Las entradas no accesibles se
// renderizan deshabilitadas, nunca ocultas, para no alterar el layout.
type Entrada struct {
	Modulo     string `json:"modulo"`
	Habilitado bool   `json:"habilitado"`
}

// Menu devuelve todas las entradas en orden canónico con su bandera de acceso.
func Menu(r string) []Entrada {
	permitidos := make(map[string]bool)
	for _, m := range Permitidos(r) {
		permitidos[m] = true
	}
	entradas := make([]Entrada, 0, len(Todos()))
	for _, m := range Todos() {
		entradas = append(entradas, Entrada{Modulo: m, Habilitado: permitidos[m]})
	}
	return entradas
}

// Aterrizaje devuelve la ruta de la consola a la que se redirige el rol
// después del login. Vacío significa rol no reconocido: la consola limpia la
// sesión y fuerza el logout.
func Aterrizaje(r string) string {
	return aterrizaje[r]
}
