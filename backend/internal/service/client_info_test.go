package service

import "testing"

func TestParseClientInfo(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantOS      string
		wantBrowser string
	}{
		{"空 UA", "", "unknown", "unknown"},
		{"Windows Chrome", chromeOnWindows, "Windows", "Chrome"},
		{"Linux Firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0", "Linux", "Firefox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseClientInfo(tt.ua)
			if info.OS != tt.wantOS || info.Browser != tt.wantBrowser {
				t.Errorf("ParseClientInfo() = %+v, want OS=%s Browser=%s", info, tt.wantOS, tt.wantBrowser)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("短字符串", 10); got != "短字符串" {
		t.Errorf("未超长不应截断: %q", got)
	}
	if got := truncateRunes("中文浏览器名称很长", 3); got != "中文浏" {
		t.Errorf("应按字符截断: %q", got)
	}
}
