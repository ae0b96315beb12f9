package cli

import (
	"PollyTTS/internal/config"
	"PollyTTS/internal/service/speech"
	"PollyTTS/internal/service/tts/polly"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version подставляется при сборке: -ldflags "-X PollyTTS/internal/app/cli.Version=1.2.3".
var Version = "dev"

// Поддерживаемые бэкенды синтеза.
const (
	ProviderPolly  = "polly"
	ProviderGoogle = "google"
)

// RunFunc получает проверенный запрос. Вызывается только если все аргументы валидны.
type RunFunc func(ctx context.Context, req speech.Request) error

// NewRootCommand собирает корневую команду. Значения по умолчанию берутся из cfg,
// флаги их перекрывают.
func NewRootCommand(cfg *config.Config, run RunFunc) *cobra.Command {
	var (
		voice    string
		rate     string
		output   string
		region   string
		provider string
	)

	cmd := &cobra.Command{
		Use:           "polly-tts <text>",
		Short:         "A very simple TTS application using AWS Polly service",
		Long:          "Converts text to speech with AWS Polly and saves the MP3 stream to a file.",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := resolve(args[0], voice, rate, output, region, provider)
			if err != nil {
				return err
			}
			// Дальше ошибки уже не про аргументы: usage не печатаем.
			cmd.SilenceUsage = true
			return run(cmd.Context(), req)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&voice, "voice", "v", "", "The voice ID to use to read the text (e.g. Joanna, Brian)")
	f.StringVarP(&rate, "rate", "r", cfg.Rate, "The reading speed rate: "+strings.Join(speech.RateTokens(), "|"))
	f.StringVarP(&output, "output", "o", cfg.Output, "Path to the output mp3 file")
	f.StringVar(&region, "aws-region", "", "AWS Region. If not specified, the AWS_REGION env var is used. If the env var is not defined, it fallbacks to '"+polly.DefaultRegion+"'")
	f.StringVar(&provider, "provider", cfg.TTSService, "Synthesis backend: polly|google")
	_ = cmd.MarkFlagRequired("voice")

	return cmd
}

// resolve проверяет аргументы и собирает speech.Request. Сеть и файлы не трогает.
func resolve(text, voice, rate, output, region, provider string) (speech.Request, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = ProviderPolly
	}
	switch provider {
	case ProviderPolly:
		if _, err := polly.ParseVoice(voice); err != nil {
			return speech.Request{}, err
		}
	case ProviderGoogle:
		if strings.TrimSpace(voice) == "" {
			return speech.Request{}, fmt.Errorf("%w: empty voice name", speech.ErrInvalidArgument)
		}
	default:
		return speech.Request{}, fmt.Errorf("%w: unknown provider %q (expected polly|google)", speech.ErrInvalidArgument, provider)
	}

	r, err := speech.ParseRate(rate)
	if err != nil {
		return speech.Request{}, err
	}

	if output == "" {
		output = speech.DefaultOutput
	}

	return speech.Request{
		Text:     text,
		Voice:    voice,
		Rate:     r,
		Output:   output,
		Region:   region,
		Provider: provider,
	}, nil
}
