package service

import (
	"BattleFS/internal/domain"
)

// PersistStoreService backs the save and load commands. Stores only live in
// memory, so both report domain.ErrNotImplemented.
type PersistStoreService struct {
	session *domain.StoreSession
}

func NewPersistStoreService(session *domain.StoreSession) *PersistStoreService {
	return &PersistStoreService{
		session: session,
	}
}

func (s *PersistStoreService) Save(name string) error {
	return s.session.Save(name)
}

func (s *PersistStoreService) Load(name string) error {
	return s.session.Load(name)
}
