package service

import (
	"strings"
	"unicode/utf8"

	"github.com/mssola/useragent"
)

const unknownClient = "unknown"

// ClientInfo 从 User-Agent 中解析出的客户端信息
type ClientInfo struct {
	OS      string
	Browser string
}

// ParseClientInfo 解析 User-Agent；无法识别的部分记为 unknown
func ParseClientInfo(userAgent string) ClientInfo {
	info := ClientInfo{OS: unknownClient, Browser: unknownClient}
	if strings.TrimSpace(userAgent) == "" {
		return info
	}

	ua := useragent.New(userAgent)
	if name := ua.OSInfo().Name; name != "" {
		info.OS = name
	} else if p := ua.Platform(); p != "" {
		info.OS = p
	}
	if name, _ := ua.Browser(); name != "" {
		info.Browser = name
	}
	return info
}

// truncateRunes 按字符截断到 max 个字符（PostgreSQL varchar 按字符计长）
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
