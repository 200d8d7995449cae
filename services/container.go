package services

import (
	"filedrive/config"
	"filedrive/repositories"
)

type Container struct {
	Auth   AuthService
	Folder FolderService
	File   FileService
}

func NewContainer(repos repositories.Container, cfg *config.Config) *Container {
	return &Container{
		Auth:   NewAuthService(repos.Users, repos.Tokens, cfg.JWT),
		Folder: NewFolderService(repos.TxManager, repos.Folders, repos.Files),
		File:   NewFileService(repos.Folders, repos.Files, cfg.Storage),
	}
}
