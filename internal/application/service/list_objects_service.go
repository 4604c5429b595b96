package service

import (
	"BattleFS/internal/domain"
)

type ListObjectsService struct {
	session *domain.StoreSession
}

func NewListObjectsService(session *domain.StoreSession) *ListObjectsService {
	return &ListObjectsService{
		session: session,
	}
}

func (s *ListObjectsService) Execute() (domain.Listing, error) {
	var listing domain.Listing
	err := s.session.With(func(store *domain.Store) error {
		listing = store.List()
		return nil
	})
	return listing, err
}
