package service

import (
	"BattleFS/internal/domain"
	"BattleFS/internal/platform/config"
)

type InitStoreService struct {
	session     *domain.StoreSession
	defaultName string
}

func NewInitStoreService(session *domain.StoreSession, cfg config.Config) *InitStoreService {
	return &InitStoreService{
		session:     session,
		defaultName: cfg.StoreName,
	}
}

type InitStoreCommand struct {
	Name string
}

type InitStoreResult struct {
	Name string
}

func (s *InitStoreService) Execute(command InitStoreCommand) InitStoreResult {
	name := command.Name
	if name == "" {
		name = s.defaultName
	}
	s.session.Init(name)
	return InitStoreResult{Name: name}
}
