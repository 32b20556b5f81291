package sqlc

import (
	"net"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier, hostIpNet net.IPNet) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries, hostIpNet),
	}
}
