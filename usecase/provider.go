package usecase

import (
	"github.com/google/wire"

	"ttsserver/repo"
)

var ProviderSet = wire.NewSet(NewSynthesizer, NewTtsUsecase, repo.ProviderSet)
