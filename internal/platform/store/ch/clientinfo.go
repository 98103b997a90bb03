package ch

import (
	"os"
	"strings"

	"chargemap/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo tags the connection so system.query_log shows which process wrote the events
// role is the app name, e.g. chargemap-api or chargemap-seed; tag overrides the build version
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	bi := version.Info()
	if t := strings.TrimSpace(tag); t != "" {
		bi.Version = t
	}
	host, _ := os.Hostname()

	return clickhouse.ClientInfo{Products: []struct{ Name, Version string }{
		{Name: "chargemap", Version: orUnknown(bi.Version)},
		{Name: "role", Version: orUnknown(role)},
		{Name: "commit", Version: bi.Commit},
		{Name: "go", Version: bi.Go},
		{Name: "host", Version: orUnknown(host)},
	}}
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
