package service

import (
	"io"

	"BattleFS/internal/domain"
)

type ReadObjectService struct {
	session *domain.StoreSession
}

func NewReadObjectService(session *domain.StoreSession) *ReadObjectService {
	return &ReadObjectService{
		session: session,
	}
}

type ReadObjectQuery struct {
	Name   string
	Output io.Writer
}

func (s *ReadObjectService) Execute(query ReadObjectQuery) error {
	return s.session.With(func(store *domain.Store) error {
		return store.Read(query.Name, query.Output)
	})
}
