package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

// reconnectDelay espera entre reintentos cuando la conexión LISTEN se cae.
const reconnectDelay = 5 * time.Second

// Listener es la suscripción de cambios del store remoto: triggers en las
// tablas observadas ejecutan NOTIFY sobre un único canal, sin payload útil.
// El consumidor no distingue tabla ni fila; siempre refetchea todo.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	log     *logger.Logger
	ticks   chan struct{}
}

// NewListener construye la suscripción sobre el canal NOTIFY indicado.
func NewListener(pool *pgxpool.Pool, channel string, log *logger.Logger) *Listener {
	return &Listener{
		pool:    pool,
		channel: channel,
		log:     log,
		// Capacidad 1: las notificaciones en ráfaga colapsan en un solo tick,
		// el consumidor refetchea todo de cualquier forma.
		ticks: make(chan struct{}, 1),
	}
}

// Changes devuelve el canal de ticks de invalidación.
func (l *Listener) Changes() <-chan struct{} {
	return l.ticks
}

// Run mantiene la conexión LISTEN hasta que ctx se cancele, reconectando con
// una espera fija cuando la conexión se pierde. Bloqueante: lanzar en goroutine.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Str("channel", l.channel).Msg("suscripción realtime caída, reconectando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conexión LISTEN: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", l.channel, err)
	}
	l.log.Info().Str("channel", l.channel).Msg("suscripción realtime activa")

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		// Entrega no bloqueante: si ya hay un tick pendiente, este se descarta.
		select {
		case l.ticks <- struct{}{}:
		default:
		}
	}
}
