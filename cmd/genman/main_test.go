package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"genman/internal/cmd"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		generate   func(context.Context) error
		cancel     bool
		wantCode   int
		wantStderr []string
	}{
		{
			name:     "page generated",
			generate: func(context.Context) error { return nil },
			wantCode: 0,
		},
		{
			name:       "generation failed",
			generate:   func(context.Context) error { return cmd.ErrMissingUtility },
			wantCode:   exitFailed,
			wantStderr: []string{"Error: usage error: missing utility name", "Help: Name the utility to document"},
		},
		{
			name:       "generation panicked",
			generate:   func(context.Context) error { panic("template exploded") },
			wantCode:   exitPanic,
			wantStderr: []string{"genman: panic while generating man page: template exploded"},
		},
		{
			name:       "interrupted",
			generate:   func(ctx context.Context) error { return ctx.Err() },
			cancel:     true,
			wantCode:   exitFailed,
			wantStderr: []string{"genman: interrupted, no man page written", "context canceled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			var stderr bytes.Buffer
			if got := run(ctx, &stderr, tt.generate); got != tt.wantCode {
				t.Errorf("run() = %d, want %d", got, tt.wantCode)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr missing %q, got:\n%s", want, stderr.String())
				}
			}
			if len(tt.wantStderr) == 0 && stderr.Len() != 0 {
				t.Errorf("unexpected stderr output: %q", stderr.String())
			}
		})
	}
}

func TestRunPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "widget")

	var seen any
	run(ctx, &bytes.Buffer{}, func(ctx context.Context) error {
		seen = ctx.Value(key{})
		return errors.New("stop")
	})
	if seen != "widget" {
		t.Errorf("generate saw context value %v, want widget", seen)
	}
}
