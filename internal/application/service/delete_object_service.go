package service

import (
	"BattleFS/internal/domain"
)

type DeleteObjectService struct {
	session *domain.StoreSession
}

func NewDeleteObjectService(session *domain.StoreSession) *DeleteObjectService {
	return &DeleteObjectService{
		session: session,
	}
}

type DeleteObjectCommand struct {
	Name string
}

type DeleteObjectResult struct {
	Entry domain.ListingEntry
}

func (s *DeleteObjectService) Execute(command DeleteObjectCommand) (DeleteObjectResult, error) {
	var result DeleteObjectResult
	err := s.session.With(func(store *domain.Store) error {
		entry, _ := store.Stat(command.Name)
		if err := store.Delete(command.Name); err != nil {
			return err
		}
		result.Entry = entry
		return nil
	})
	return result, err
}
