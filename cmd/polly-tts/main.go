package main

import (
	"PollyTTS/internal/app/cli"
	"PollyTTS/internal/app/requester"
	"PollyTTS/internal/config"
	"PollyTTS/internal/service/speech"
	gtts "PollyTTS/internal/service/tts/google"
	"PollyTTS/internal/service/tts/polly"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Утилита синтеза речи: текст оборачивается в SSML с заданной скоростью,
// отправляется в Amazon Polly (или Google TTS), MP3 сохраняется в файл.
// Пример запуска:
//
//	go run ./cmd/polly-tts "Hello world" --voice Joanna --rate slow -o hello.mp3
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка конфигурации:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	root := cli.NewRootCommand(cfg, func(ctx context.Context, req speech.Request) error {
		return synthesize(ctx, cfg, req, sugar)
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		sugar.Errorw("Synthesis failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// synthesize создаёт клиента выбранного бэкенда и запускает Requester.
func synthesize(ctx context.Context, cfg *config.Config, req speech.Request, logger *zap.SugaredLogger) error {
	logger.Infow("Starting synthesis", "provider", req.Provider, "voice", req.Voice, "rate", req.Rate.String(), "output", req.Output)

	switch req.Provider {
	case cli.ProviderGoogle:
		client, err := gtts.New(ctx, cfg.GoogleTTS, logger)
		if err != nil {
			return fmt.Errorf("%w: %w", speech.ErrRemoteService, err)
		}
		defer client.Close()
		return requester.New(client, logger).Run(ctx, req)
	default:
		client, err := polly.New(ctx, req.Region, logger)
		if err != nil {
			return fmt.Errorf("%w: %w", speech.ErrRemoteService, err)
		}
		logger.Infow("AWS region resolved", "region", client.Region())
		return requester.New(client, logger).Run(ctx, req)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if !debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return zc.Build()
}
