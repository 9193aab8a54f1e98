package app

import (
	"go.uber.org/zap"

	"runmate/internal/domain"
)

// ErrPassphraseRequired is returned when a command needs secure storage but
// no passphrase was given. It is the same sentinel the store returns.
var ErrPassphraseRequired = domain.ErrPassphraseRequired

// App is what every command runs against.
type App struct {
	*Wire
	Config *Config
	Log    *zap.Logger
}

// New wires an App from cfg.
func New(cfg *Config, log *zap.Logger) (*App, error) {
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Wire: w, Config: cfg, Log: log}, nil
}

// Passphrase returns the configured passphrase or ErrPassphraseRequired.
func (a *App) Passphrase() (string, error) {
	if a.Config.Passphrase == "" {
		return "", ErrPassphraseRequired
	}
	return a.Config.Passphrase, nil
}

// RequireSession restores the stored session so the api client is
// authenticated.
func (a *App) RequireSession() (domain.Session, error) {
	pass, err := a.Passphrase()
	if err != nil {
		return domain.Session{}, err
	}
	return a.Auth.Restore(pass)
}

// Close releases background resources and flushes the logger.
func (a *App) Close() {
	a.Search.Close()
	_ = a.Log.Sync()
}
