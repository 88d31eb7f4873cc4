package bootstrap

import (
	"recruitflow/internal/notify"
	"recruitflow/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewDispatcher,
	),
)

func NewDispatcher(cfg config.Config) notify.Dispatcher {
	if !cfg.Notify.Enabled {
		return notify.NopDispatcher{}
	}

	email := notify.NewSendGridSender(cfg.Notify)
	sms := notify.NewTwilioSender(cfg.Notify)
	return notify.NewDispatcher(cfg.Notify, email, sms)
}
