// Package logger arma el logger estructurado del servicio sobre zerolog.
// En development escribe consola legible; en cualquier otro entorno escribe
// JSON apto para recolección centralizada.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones de arranque del logger.
type Config struct {
	App   string // nombre del servicio, etiqueta todos los eventos
	Env   string // development activa la consola legible
	Level string // trace, debug, info, warn, error; desconocido cae en info
}

// Logger envoltorio inyectable sobre zerolog.
type Logger struct {
	zl zerolog.Logger
}

var niveles = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// New construye el logger del servicio y redirige el logger global de zerolog
// para las librerías que lo usan directo.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	nivel, ok := niveles[cfg.Level]
	if !ok {
		nivel = zerolog.InfoLevel
	}

	ctx := zerolog.New(salida).Level(nivel).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Componente deriva un sublogger etiquetado por capa (http, postgres, auth)
// para poder filtrar los eventos de cada una.
func (l *Logger) Componente(nombre string) *Logger {
	return &Logger{zl: l.zl.With().Str("componente", nombre).Logger()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With expone el contexto de zerolog para campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog entrega el logger interno cuando se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
