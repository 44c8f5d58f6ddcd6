package state

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding/ianaindex"

	"cmodel/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env != EnvFromContext(ctx) {
		t.Error("same context must return same environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if up := env.Uptime(); up < time.Second || up > time.Minute {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("Expected restoreStdLog to be set")
	}
	log.Print("from standard logger")
	env.RestoreStdLog()

	if logs.FilterMessage("from standard logger").Len() != 1 {
		t.Errorf("standard logger output was not redirected: %v", logs.All())
	}
}

func TestLocalEnv_NoLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}

func TestLocalEnv_RepeatedRedirect(t *testing.T) {
	env := &LocalEnv{Log: zaptest.NewLogger(t)}
	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}
}

func TestLocalEnv_Setup(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	if env.CodePage, err = ianaindex.IANA.Encoding("windows-1251"); err != nil {
		t.Fatalf("unable to get code page: %v", err)
	}

	name, err := env.CodePage.NewDecoder().String("\xcf\xf0\xe8\xe2\xe5\xf2.html")
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if name != "Привет.html" {
		t.Errorf("decoded name = %q", name)
	}
	if env.Rpt != nil {
		t.Error("report must be requested explicitly")
	}
}

func TestLocalEnv_Tally(t *testing.T) {
	env := newLocalEnv()
	env.Tally(nil)
	env.Tally(nil)
	env.Tally(errors.New("broken"))

	if env.Converted != 2 || env.Failed != 1 {
		t.Errorf("expected 2 converted and 1 failed, got %d and %d", env.Converted, env.Failed)
	}
}
