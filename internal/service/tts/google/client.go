package google

import (
	"PollyTTS/internal/config"
	"PollyTTS/internal/service/speech"
	"PollyTTS/internal/service/tts"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const scope = "https://www.googleapis.com/auth/cloud-platform"

// API — часть SDK-клиента Google TTS, используемая для синтеза.
type API interface {
	SynthesizeSpeech(ctx context.Context, req *ttspb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*ttspb.SynthesizeSpeechResponse, error)
	Close() error
}

// Client реализует синтез речи через Google Cloud Text-to-Speech.
type Client struct {
	api      API
	language string
	logger   *zap.SugaredLogger
}

// New находит учётные данные ADC и создаёт клиента SDK.
func New(ctx context.Context, gc config.GoogleTTSConfig, logger *zap.SugaredLogger) (*Client, error) {
	// Установим GOOGLE_APPLICATION_CREDENTIALS из конфига, если не задано в окружении.
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" && strings.TrimSpace(gc.CredentialsPath) != "" {
		_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", gc.CredentialsPath)
	}

	creds, err := google.FindDefaultCredentials(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("google tts: ADC credentials not found: %w", err)
	}
	ttsClient, err := gctts.NewClient(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("google tts: create client: %w", err)
	}
	return NewWithAPI(ttsClient, gc.Language, logger), nil
}

func NewWithAPI(api API, language string, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{api: api, language: strings.TrimSpace(language), logger: logger}
}

func (c *Client) Close() error { return c.api.Close() }

// Synthesize выполняет запрос к Google TTS и возвращает MP3 как поток.
func (c *Client) Synthesize(ctx context.Context, in tts.Input) (io.ReadCloser, error) {
	name := strings.TrimSpace(in.Voice)
	if name == "" {
		return nil, fmt.Errorf("%w: google tts: empty voice name", speech.ErrInvalidArgument)
	}
	if in.Format != "" && in.Format != tts.FormatMP3 {
		return nil, fmt.Errorf("google tts: unsupported format %q", in.Format)
	}

	var input *ttspb.SynthesisInput
	if in.TextType == tts.TextTypeText {
		input = &ttspb.SynthesisInput{InputSource: &ttspb.SynthesisInput_Text{Text: in.Text}}
	} else {
		input = &ttspb.SynthesisInput{InputSource: &ttspb.SynthesisInput_Ssml{Ssml: in.Text}}
	}

	req := &ttspb.SynthesizeSpeechRequest{
		Input: input,
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: c.languageFor(name),
			Name:         name,
		},
		// Только MP3
		AudioConfig: &ttspb.AudioConfig{AudioEncoding: ttspb.AudioEncoding_MP3},
	}

	started := time.Now()
	resp, err := c.api.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, errors.New("google tts: empty audioContent in response")
	}
	c.logger.Debugw("Google TTS synthesize completed", "voice", name, "took", time.Since(started).String())

	return io.NopCloser(bytes.NewReader(resp.GetAudioContent())), nil
}

// languageFor берёт язык из префикса имени голоса (de-DE-Wavenet-B → de-DE).
// Язык из конфига используется только для имён без такого префикса.
func (c *Client) languageFor(voice string) string {
	if lang, ok := voicePrefix(voice); ok {
		return lang
	}
	return c.language
}

// voicePrefix выделяет код языка вида xx-YY (или xxx-YY, es-419) из имени голоса.
func voicePrefix(voice string) (string, bool) {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) < 3 {
		return "", false
	}
	lang, region := parts[0], parts[1]
	if len(lang) < 2 || len(lang) > 3 || len(region) < 2 || len(region) > 3 {
		return "", false
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	for _, r := range region {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", false
		}
	}
	return lang + "-" + region, true
}
