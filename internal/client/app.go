package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	storage  io.Closer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, storage io.Closer, logger *logger.Logger) (Client, error) {
	if services == nil || services.AuthService == nil || services.NoteService == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		storage:  storage,
		logger:   logger,
	}, nil
}

// Run restores the saved session when the server still accepts it and
// runs the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	defer a.closeStorage()

	var restored *models.Session
	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		restored = &session
		a.logger.Info().Str("user_id", session.User.ID).Msg("session restored")
	case errors.Is(err, service.ErrNotLoggedIn):
	case errors.Is(err, service.ErrSessionExpired):
		a.logger.Info().Msg("stored session expired")
	default:
		a.logger.Warn().Err(err).Msg("could not restore session")
	}

	err = a.ui.Run(ctx, restored)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	a.services.NoteService.Reset()
	return nil
}

func (a *App) closeStorage() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
}
