package telegram

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/config"
)

// Module provides Telegram bot for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
	fx.Invoke(registerLifecycle),
)

// provideBot creates Telegram bot from config
func provideBot(cfg *config.TelegramConfig, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg.BotToken, logger.With().Str("component", "telegram").Logger())
}

// registerLifecycle runs long polling between OnStart and OnStop.
// OnStop waits for the polling loop to exit or for the stop deadline.
func registerLifecycle(lc fx.Lifecycle, bot *Bot) {
	poller := newPoller(bot.Start)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			poller.start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := poller.stop(ctx); err != nil {
				return err
			}
			return bot.Stop()
		},
	})
}

// poller owns the polling goroutine and its cancellation
type poller struct {
	run    func(ctx context.Context) error
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoller(run func(ctx context.Context) error) *poller {
	return &poller{run: run}
}

// start launches run on a context detached from the fx start deadline
func (p *poller) start() {
	var ctx context.Context
	ctx, p.cancel = context.WithCancel(context.Background())
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		_ = p.run(ctx)
	}()
}

// stop cancels run and waits for it to return
func (p *poller) stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
