package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, notifier Notifier, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		NoteService: NewClientNoteService(localStore.SessionRepository, serverAdapter, workers.NewKeyedQueue(), notifier, logger),
	}
}
