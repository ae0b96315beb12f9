package polly

import (
	"PollyTTS/internal/service/speech"
	"PollyTTS/internal/service/tts"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"go.uber.org/zap"
)

// API — часть клиента Polly, которая нужна для синтеза. Позволяет подменить клиента в тестах.
type API interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// Client реализует синтез речи через Amazon Polly.
type Client struct {
	api    API
	region string
	logger *zap.SugaredLogger
}

// New загружает конфигурацию AWS (учётные данные, регион из окружения и shared config)
// и создаёт клиента Polly. Регион выбирается через ResolveRegion.
func New(ctx context.Context, regionOverride string, logger *zap.SugaredLogger) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if r := strings.TrimSpace(regionOverride); r != "" {
		opts = append(opts, awsconfig.WithRegion(r))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("polly: load aws config: %w", err)
	}
	cfg.Region = ResolveRegion(regionOverride, cfg.Region)

	return NewWithAPI(polly.NewFromConfig(cfg), cfg.Region, logger), nil
}

// NewWithAPI создаёт клиента поверх готовой реализации API.
func NewWithAPI(api API, region string, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{api: api, region: region, logger: logger}
}

// Region — регион, к которому привязан клиент.
func (c *Client) Region() string { return c.region }

// Synthesize отправляет разметку в Polly и возвращает аудиопоток ответа.
func (c *Client) Synthesize(ctx context.Context, in tts.Input) (io.ReadCloser, error) {
	voice, err := ParseVoice(in.Voice)
	if err != nil {
		return nil, err
	}
	textType := types.TextTypeSsml
	if in.TextType == tts.TextTypeText {
		textType = types.TextTypeText
	}
	format := types.OutputFormatMp3
	if in.Format != "" {
		format = types.OutputFormat(in.Format)
	}

	started := time.Now()
	resp, err := c.api.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: format,
		Text:         aws.String(in.Text),
		TextType:     textType,
		VoiceId:      voice,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.AudioStream == nil {
		return nil, errors.New("polly: empty audio stream in response")
	}
	c.logger.Debugw("Polly synthesize completed",
		"region", c.region,
		"voice", string(voice),
		"content_type", aws.ToString(resp.ContentType),
		"took", time.Since(started).String(),
	)
	return resp.AudioStream, nil
}

// Voices — все идентификаторы голосов, известные SDK.
func Voices() []string {
	values := types.VoiceId("").Values()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// ParseVoice проверяет, что голос входит в перечисление Polly (с учётом регистра).
func ParseVoice(s string) (types.VoiceId, error) {
	if slices.Contains(types.VoiceId("").Values(), types.VoiceId(s)) {
		return types.VoiceId(s), nil
	}
	return "", fmt.Errorf("%w: polly: unknown voice %q", speech.ErrInvalidArgument, s)
}
