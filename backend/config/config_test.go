package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
auth:
  jwt_secret: "file-secret-at-least-16"
  access_token_ttl: 30m
history:
  retention_days: 30
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	t.Setenv("ELEARNING_DB_NAME", "elearning_test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("期望 access_token_ttl=30m，实际=%v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Database.Name != "elearning_test" {
		t.Errorf("环境变量应覆盖默认值，实际 db.name=%s", cfg.Database.Name)
	}
	if cfg.History.RetentionDays != 30 {
		t.Errorf("期望 retention_days=30，实际=%d", cfg.History.RetentionDays)
	}
	if cfg.History.CleanupCron == "" {
		t.Error("cleanup_cron 应有默认值")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"合法配置", Config{Server: ServerConfig{Port: 8080}, Auth: AuthConfig{JWTSecret: "0123456789abcdef"}}, false},
		{"缺少密钥", Config{Server: ServerConfig{Port: 8080}}, true},
		{"密钥过短", Config{Server: ServerConfig{Port: 8080}, Auth: AuthConfig{JWTSecret: "short"}}, true},
		{"端口越界", Config{Server: ServerConfig{Port: 70000}, Auth: AuthConfig{JWTSecret: "0123456789abcdef"}}, true},
		{"保留天数为负", Config{
			Server:  ServerConfig{Port: 8080},
			Auth:    AuthConfig{JWTSecret: "0123456789abcdef"},
			History: HistoryConfig{RetentionDays: -1},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable", Timezone: "UTC"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
