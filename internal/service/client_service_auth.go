package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientAuthService struct {
	sessions *sessionKeeper
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: newSessionKeeper(sessions, serverAdapter, logger),
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "clientAuthService.Register").Logger()

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		log.Info().Err(err).Msg("registration rejected")
		return models.Session{}, mapAdapterError(err)
	}
	if resp.AccessToken == "" || resp.User == nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrServerRejected, adapter.ErrEmptyResponse)
	}

	return a.persist(ctx, resp.AccessToken, *resp.User)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "clientAuthService.Login").Logger()

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		log.Info().Err(err).Msg("login rejected")
		return models.Session{}, mapAdapterError(err)
	}
	if resp.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: %w", ErrServerRejected, adapter.ErrEmptyResponse)
	}

	a.adapter.SetToken(resp.AccessToken)
	user, err := a.adapter.GetUser(ctx)
	if err != nil {
		log.Err(err).Msg("error loading user after login")
		return models.Session{}, a.sessions.handle(ctx, err)
	}

	return a.persist(ctx, resp.AccessToken, user)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx).With().Str("func", "clientAuthService.RestoreSession").Logger()

	session, err := a.sessions.repository.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	user, err := a.adapter.GetUser(ctx)
	if err != nil {
		log.Info().Err(err).Msg("stored session was not accepted")
		return models.Session{}, a.sessions.handle(ctx, err)
	}

	session.User = user
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.sessions.clear(ctx)
}

func (a *clientAuthService) persist(ctx context.Context, token string, user models.User) (models.Session, error) {
	session := models.Session{Token: token, User: user, SavedAt: a.now().UTC()}

	a.adapter.SetToken(token)
	if err := a.sessions.repository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

// sessionKeeper clears the persisted session whenever the server answers 401.
type sessionKeeper struct {
	repository store.SessionRepository
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func newSessionKeeper(repository store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *sessionKeeper {
	return &sessionKeeper{repository: repository, adapter: serverAdapter, logger: logger}
}

// handle maps err and, for ErrSessionExpired, forgets the session.
func (k *sessionKeeper) handle(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrSessionExpired) {
		if clearErr := k.clear(ctx); clearErr != nil {
			k.logger.Err(clearErr).Msg("error clearing expired session")
		}
	}
	return mapped
}

func (k *sessionKeeper) clear(ctx context.Context) error {
	k.adapter.SetToken("")
	if err := k.repository.ClearSession(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}
