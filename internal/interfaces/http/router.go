package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/auth"
	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/application/sesion"
	"github.com/getlatam/getla-api/internal/application/usecase"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/rol"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Gate         *sesion.Gate
	UsuarioUC    *usecase.UsuarioUseCase
	ClienteUC    *usecase.ClienteUseCase
	CabeceraUC   *usecase.CabeceraUseCase
	InventarioUC *usecase.InventarioUseCase
	FacturaUC    *facturacion.FacturaUseCase
	PDFUC        *facturacion.PDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login y recuperación de contraseña, público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Login)
	api.Post("/auth/forgot-password", authHandler.ForgotPassword)
	api.Post("/auth/reset-password/:token", authHandler.ResetPassword)

	// Puerta de navegación (extrae el token por su cuenta: sin sesión responde
	// 401 con estado "redirigiendo" en vez del error genérico del middleware)
	sesionHandler := NewSesionHandler(deps.Gate)
	api.Get("/sesion", sesionHandler.Evaluar)

	// Rutas protegidas (requieren token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/quien-soy", authHandler.QuienSoy)
	protected.Post("/auth/logout", authHandler.Logout)

	// Usuarios (solo admin por la tabla de permisos)
	usuarios := protected.Group("/usuarios", RequireModulo(rol.ModuloUsuarios))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Cabecera (sucursales)
	cabeceras := protected.Group("/cabecera", RequireModulo(rol.ModuloCabeceras))
	cabeceraHandler := NewCabeceraHandler(deps.CabeceraUC)
	cabeceras.Post("/", cabeceraHandler.Create)
	cabeceras.Get("/", cabeceraHandler.List)
	cabeceras.Put("/:id", cabeceraHandler.Update)
	cabeceras.Delete("/:id", cabeceraHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes", RequireModulo(rol.ModuloClientes))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/nit/:nit", clienteHandler.GetByNit)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Facturación
	facturas := protected.Group("/factura", RequireModulo(rol.ModuloFacturas))
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.PDFUC)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Get("/:id/pdf", facturaHandler.DownloadPDF)
	facturas.Delete("/:id", facturaHandler.Delete)

	// Inventarios: un bloque de rutas por dominio, mismo handler parametrizado.
	inventarios := []struct {
		dominio string
		modulo  string
		// ruta del listado por categoría; difiere entre dominios por historia de la consola
		porCategoria string
	}{
		{entity.DominioRepuestos, rol.ModuloRepuestos, "/categoria/:categoriaId"},
		{entity.DominioDotacion, rol.ModuloDotacion, "/porcategoria/:categoriaId"},
		{entity.DominioLimpieza, rol.ModuloLimpieza, "/porcategoria/:categoriaId"},
	}
	for _, inv := range inventarios {
		handler := NewInventarioHandler(deps.InventarioUC, inv.dominio)

		categorias := protected.Group("/"+inv.dominio, RequireModulo(inv.modulo))
		categorias.Post("/", handler.CreateCategoria)
		categorias.Get("/", handler.ListCategorias)
		categorias.Get("/:id", handler.GetCategoria)
		categorias.Put("/:id", handler.UpdateCategoria)
		categorias.Delete("/:id", handler.DeleteCategoria)

		productos := protected.Group("/productos-"+inv.dominio, RequireModulo(inv.modulo))
		productos.Post("/", handler.CreateProducto)
		productos.Get("/", handler.ListProductos)
		productos.Get(inv.porCategoria, handler.ListProductosPorCategoria)
		productos.Get("/:id", handler.GetProducto)
		productos.Put("/:id", handler.UpdateProducto)
		productos.Delete("/:id", handler.DeleteProducto)
	}
}
