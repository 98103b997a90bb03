package api

import (
	"chargemap/internal/core/events"
	"chargemap/internal/platform/auth"
	"chargemap/internal/platform/config"
	"chargemap/internal/platform/net/middleware"
	"chargemap/internal/platform/store"
)

// Publisher logs every event and appends it to clickhouse when the store has it
func Publisher(st *store.Store, table string) events.Publisher {
	fan := events.Fanout{events.NewLog()}
	if st != nil && st.CH != nil {
		fan = append(fan, events.NewClickhouse(st.CH, table))
	}
	return fan
}

// AuthFromConf reads AUTH_* from the root view
// without a secret the port is nil and protected routes answer 401
func AuthFromConf(root config.Conf) (middleware.AuthPort, error) {
	v, err := auth.FromConf(root.Prefix("AUTH_"))
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}
