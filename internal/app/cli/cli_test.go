package cli

import (
	"PollyTTS/internal/config"
	"PollyTTS/internal/service/speech"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls int
	req   speech.Request
	err   error
}

func (r *recorder) run(_ context.Context, req speech.Request) error {
	r.calls++
	r.req = req
	return r.err
}

func execute(t *testing.T, cfg *config.Config, rec *recorder, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(cfg, rec.run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Defaults(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, config.Defaults(), rec, "Hello world", "--voice", "Joanna")
	require.NoError(t, err)

	require.Equal(t, 1, rec.calls)
	assert.Equal(t, speech.Request{
		Text:     "Hello world",
		Voice:    "Joanna",
		Rate:     speech.RateMedium,
		Output:   "output.mp3",
		Region:   "",
		Provider: ProviderPolly,
	}, rec.req)
}

func TestRootCommand_AllFlags(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, config.Defaults(), rec,
		"-v", "Brian", "-r", "x-slow", "-o", "/tmp/speech.mp3", "--aws-region", "us-east-1", "Good morning")
	require.NoError(t, err)

	assert.Equal(t, "Good morning", rec.req.Text)
	assert.Equal(t, "Brian", rec.req.Voice)
	assert.Equal(t, speech.RateXSlow, rec.req.Rate)
	assert.Equal(t, "/tmp/speech.mp3", rec.req.Output)
	assert.Equal(t, "us-east-1", rec.req.Region)
}

func TestRootCommand_ConfigDefaults(t *testing.T) {
	cfg := config.Defaults()
	cfg.Rate = "fast"
	cfg.Output = "from-env.mp3"

	rec := &recorder{}
	_, err := execute(t, cfg, rec, "text", "--voice", "Joanna")
	require.NoError(t, err)
	assert.Equal(t, speech.RateFast, rec.req.Rate)
	assert.Equal(t, "from-env.mp3", rec.req.Output)
}

func TestRootCommand_UnknownVoiceNeverRuns(t *testing.T) {
	rec := &recorder{}
	out, err := execute(t, config.Defaults(), rec, "Hello", "--voice", "Nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, speech.ErrInvalidArgument)
	assert.Zero(t, rec.calls)
	assert.Contains(t, out, "Usage:")
}

func TestRootCommand_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing voice", []string{"Hello"}},
		{"missing text", []string{"--voice", "Joanna"}},
		{"extra positional", []string{"Hello", "again", "--voice", "Joanna"}},
		{"bad rate", []string{"Hello", "--voice", "Joanna", "--rate", "warp"}},
		{"bad provider", []string{"Hello", "--voice", "Joanna", "--provider", "espeak"}},
		{"empty google voice", []string{"Hello", "--voice", " ", "--provider", "google"}},
		{"unknown flag", []string{"Hello", "--voice", "Joanna", "--volume", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			_, err := execute(t, config.Defaults(), rec, tt.args...)
			assert.Error(t, err)
			assert.Zero(t, rec.calls)
		})
	}
}

func TestRootCommand_GoogleProviderAcceptsAnyName(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, config.Defaults(), rec, "Hallo", "--voice", "de-DE-Wavenet-B", "--provider", "google")
	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, rec.req.Provider)
	assert.Equal(t, "de-DE-Wavenet-B", rec.req.Voice)
}

func TestRootCommand_RunErrorSkipsUsage(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	out, err := execute(t, config.Defaults(), rec, "Hello", "--voice", "Joanna")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.NotContains(t, out, "Usage:")
}

func TestRootCommand_Version(t *testing.T) {
	rec := &recorder{}
	out, err := execute(t, config.Defaults(), rec, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
	assert.Zero(t, rec.calls)
}
