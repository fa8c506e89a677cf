package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.ParseKind
	}{
		{name: "https link", input: "https://example.com/post", want: domain.ParseKindLink},
		{name: "http link", input: "http://example.com", want: domain.ParseKindLink},
		{name: "link with surrounding spaces", input: "  https://example.com  ", want: domain.ParseKindLink},
		{name: "plain text", input: "some pasted text", want: domain.ParseKindText},
		{name: "text mentioning a scheme", input: "read https later", want: domain.ParseKindText},
		{name: "scheme without host", input: "https://", want: domain.ParseKindText},
		{name: "file URL", input: "file:///etc/hosts", want: domain.ParseKindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectKind(tt.input))
		})
	}
}

func TestParseCmd_SubmitsText(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	var gotKind domain.ParseKind
	var gotInput string
	parseService = &mockParseService{
		SubmitFunc: func(_ context.Context, kind domain.ParseKind, input string) (*domain.ParseRecord, error) {
			gotKind = kind
			gotInput = input
			return &domain.ParseRecord{
				ID:     "rec-1",
				Status: domain.ParseStatusDone,
				Title:  "A title",
				Output: "Cleaned output",
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "some pasted text"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.ParseKindText, gotKind)
	assert.Equal(t, "some pasted text", gotInput)
	assert.Contains(t, buf.String(), "rec-1")
	assert.Contains(t, buf.String(), "Cleaned output")
}

func TestParseCmd_DetectsLink(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	var gotKind domain.ParseKind
	parseService = &mockParseService{
		SubmitFunc: func(_ context.Context, kind domain.ParseKind, _ string) (*domain.ParseRecord, error) {
			gotKind = kind
			return &domain.ParseRecord{ID: "rec-2", Status: domain.ParseStatusDone, Output: "ok"}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "https://example.com/article"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, domain.ParseKindLink, gotKind)
}

func TestParseCmd_TextFlagForcesTextKind(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()
	defer func() { parseAsText = false }()

	var gotKind domain.ParseKind
	parseService = &mockParseService{
		SubmitFunc: func(_ context.Context, kind domain.ParseKind, _ string) (*domain.ParseRecord, error) {
			gotKind = kind
			return &domain.ParseRecord{ID: "rec-3", Status: domain.ParseStatusDone, Output: "ok"}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "--text", "https://example.com/article"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, domain.ParseKindText, gotKind)
}

func TestParseCmd_PipelineFailure(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	parseService = &mockParseService{
		SubmitFunc: func(_ context.Context, _ domain.ParseKind, _ string) (*domain.ParseRecord, error) {
			record := &domain.ParseRecord{ID: "rec-4", Status: domain.ParseStatusFailed, Error: "model unreachable"}
			return record, errors.New("parse pipeline: model unreachable")
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", "some text"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, buf.String(), "rec-4")
}

func TestParseCmd_NoService(t *testing.T) {
	oldService := parseService
	parseService = nil
	defer func() { parseService = oldService }()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"parse", "anything"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
