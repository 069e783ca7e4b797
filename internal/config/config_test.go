package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "DB_HOST", "DB_NAME", "UPLOAD_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.App.HTTPPort)
	}
	if cfg.Uploads.Dir != "uploads" {
		t.Fatalf("expected default upload dir, got %q", cfg.Uploads.Dir)
	}
	if cfg.Database.DBHost != "localhost" || cfg.Database.DBName != "job_portal" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/tmp/logos")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.App.HTTPPort)
	}
	if cfg.Uploads.Dir != "/tmp/logos" {
		t.Fatalf("expected upload dir override, got %q", cfg.Uploads.Dir)
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Fatalf("expected pool max conns 12, got %d", cfg.Database.PoolMaxConns)
	}
	if cfg.Database.ConnectTimeout.Seconds() != 2 {
		t.Fatalf("expected 2s connect timeout, got %v", cfg.Database.ConnectTimeout)
	}
}
