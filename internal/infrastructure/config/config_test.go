package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadMap_Defaults(t *testing.T) {
	cfg, err := LoadMap(context.Background(), map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != BackendMemory || cfg.SessionBackend != BackendMemory {
		t.Errorf("unexpected store backends %q / %q", cfg.StoreBackend, cfg.SessionBackend)
	}
	if cfg.NotifyBackend != BackendLog {
		t.Errorf("NotifyBackend = %q, want log", cfg.NotifyBackend)
	}
	if cfg.ExternalTimeout != 5*time.Second {
		t.Errorf("ExternalTimeout = %v, want 5s", cfg.ExternalTimeout)
	}
	if cfg.Mongo.Database != "school_records" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.Notify.Channel != "student-notifications" {
		t.Errorf("Notify.Channel = %q", cfg.Notify.Channel)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestLoadMap_Overrides(t *testing.T) {
	cfg, err := LoadMap(context.Background(), map[string]string{
		"STORE_BACKEND":    "postgres",
		"SESSION_BACKEND":  "redis",
		"EXTERNAL_TIMEOUT": "250ms",
		"REDIS_DB":         "3",
		"ENV":              "production",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreBackend != BackendPostgres || cfg.SessionBackend != BackendRedis {
		t.Errorf("backends not applied: %+v", cfg)
	}
	if cfg.ExternalTimeout != 250*time.Millisecond {
		t.Errorf("ExternalTimeout = %v", cfg.ExternalTimeout)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d", cfg.Redis.DB)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
}

func TestLoadMap_RejectsUnknownBackend(t *testing.T) {
	cases := map[string]map[string]string{
		"store":   {"STORE_BACKEND": "sqlite"},
		"session": {"SESSION_BACKEND": "postgres"},
		"media":   {"MEDIA_BACKEND": "s3"},
		"notify":  {"NOTIFY_BACKEND": "smtp"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadMap(context.Background(), env); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadMap_B2NeedsCredentials(t *testing.T) {
	_, err := LoadMap(context.Background(), map[string]string{"MEDIA_BACKEND": "b2"})
	if err == nil {
		t.Fatal("expected error for missing B2 credentials")
	}

	_, err = LoadMap(context.Background(), map[string]string{
		"MEDIA_BACKEND":      "b2",
		"B2_ACCOUNT_ID":      "acc",
		"B2_APPLICATION_KEY": "key",
		"B2_BUCKET":          "photos",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
