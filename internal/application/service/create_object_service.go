package service

import (
	"BattleFS/internal/domain"
)

type CreateObjectService struct {
	session *domain.StoreSession
}

func NewCreateObjectService(session *domain.StoreSession) *CreateObjectService {
	return &CreateObjectService{
		session: session,
	}
}

type CreateObjectCommand struct {
	Path string
}

type CreateObjectResult struct {
	Entry domain.ListingEntry
}

func (s *CreateObjectService) Execute(command CreateObjectCommand) (CreateObjectResult, error) {
	var result CreateObjectResult
	err := s.session.With(func(store *domain.Store) error {
		if err := store.Create(command.Path); err != nil {
			return err
		}
		result.Entry, _ = store.Stat(command.Path)
		return nil
	})
	return result, err
}
