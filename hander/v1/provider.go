package V1

import (
	"ttsserver/hander"
	"ttsserver/usecase"

	"github.com/google/wire"
)

type Handers struct {
	Hello *HelloHander
	Tts   *TtsHander
}

var ProviderSet = wire.NewSet(
	hander.NewBaseHandler,
	NewHelloHander,
	NewTtsHander,
	usecase.ProviderSet,

	wire.Struct(new(Handers), "*"),
)
