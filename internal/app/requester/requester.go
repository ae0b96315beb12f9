package requester

import (
	"PollyTTS/internal/service/speech"
	"PollyTTS/internal/service/tts"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Requester выполняет сценарий «текст → разметка → синтез → файл» один раз.
type Requester struct {
	synth  tts.Synthesizer
	logger *zap.SugaredLogger
}

func New(synth tts.Synthesizer, logger *zap.SugaredLogger) *Requester {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Requester{synth: synth, logger: logger}
}

// Run синтезирует речь для req и сохраняет аудио в req.Output.
// Ни один шаг не повторяется. Файл создаётся только после полного получения ответа;
// если запись оборвётся на середине, частично записанный файл остаётся на диске.
func (r *Requester) Run(ctx context.Context, req speech.Request) error {
	// 1. Разметка
	payload := speech.BuildSSML(req.Text, req.Rate)
	r.logger.Debugw("Запрос синтеза", "voice", req.Voice, "rate", req.Rate.String(), "payload", payload)

	// 2. Вызов удалённого сервиса
	stream, err := r.synth.Synthesize(ctx, tts.Input{
		Text:     payload,
		TextType: tts.TextTypeSSML,
		Voice:    req.Voice,
		Format:   tts.FormatMP3,
	})
	if err != nil {
		// Ошибка проверки аргументов на стороне бэкенда: это не ошибка удалённого сервиса.
		if errors.Is(err, speech.ErrInvalidArgument) {
			return fmt.Errorf("synthesize: %w", err)
		}
		return fmt.Errorf("%w: synthesize: %w", speech.ErrRemoteService, err)
	}

	// 3. Дочитываем поток целиком в память
	data, err := collect(stream)
	if err != nil {
		return fmt.Errorf("%w: read audio stream: %w", speech.ErrStreamCollection, err)
	}

	// 4. Создаём (перезаписываем) файл и пишем буфер одной операцией
	if err := writeFile(req.Output, data); err != nil {
		return fmt.Errorf("%w: %w", speech.ErrFileIO, err)
	}

	r.logger.Infow("Аудио сохранено", "path", req.Output, "bytes", len(data))
	return nil
}

func collect(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
