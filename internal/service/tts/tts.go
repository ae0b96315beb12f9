package tts

import (
	"context"
	"io"
)

// Типы входного текста и формат аудио, которые понимают бэкенды.
const (
	TextTypeSSML = "ssml"
	TextTypeText = "text"

	FormatMP3 = "mp3"
)

// Input — разметка, голос и формат для одного вызова синтеза.
type Input struct {
	Text     string
	TextType string
	Voice    string
	Format   string
}

// Synthesizer абстракция удалённого TTS. Возвращает поток закодированного аудио,
// закрыть его обязан вызывающий.
type Synthesizer interface {
	Synthesize(ctx context.Context, in Input) (io.ReadCloser, error)
}
