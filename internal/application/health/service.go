package health

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"orgboard-backend/internal/middleware"
	"orgboard-backend/internal/store"

	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for the health check. If nil, the database is
// reported as disconnected.
type DBPinger interface {
	Ping() error
}

// CollectResult is the payload of /health/json.
type CollectResult struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Traffic      TrafficInfo          `json:"traffic"`
	Loader       LoaderInfo           `json:"loader"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	HeapUsed      uint64 `json:"heapUsed"`
	Goroutines    int    `json:"goroutines"`
	Platform      string `json:"platform"`
	GoVersion     string `json:"goVersion"`
}

type TrafficInfo struct {
	TotalRequests   int    `json:"totalRequests"`
	SuccessCount    int    `json:"successCount"`
	FailedCount     int    `json:"failedCount"`
	SuccessRate     string `json:"successRate"`
	AvgResponseTime string `json:"avgResponseTime"`
}

// LoaderInfo reports the one-shot CSV load: its binary state and how many
// records it produced.
type LoaderInfo struct {
	State   store.State `json:"state"`
	Records int         `json:"records"`
}

type DepStatus struct {
	Status string `json:"status"`
	PingMs *int64 `json:"pingMs"`
}

var processStart = time.Now()

// CollectHealth gathers health data from Redis, the optional DB, and the
// record store.
func CollectHealth(ctx context.Context, rdb *redis.Client, db DBPinger, st *store.Store) CollectResult {
	result := CollectResult{
		Dependencies: make(map[string]DepStatus),
	}

	dbStatus := "disconnected"
	var dbPingMs *int64
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbPingMs = &ms
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	result.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs *int64
	traffic := TrafficInfo{SuccessRate: "100", AvgResponseTime: "0"}
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = "connected"
			traffic = collectTraffic(ctx, rdb)
		} else {
			redisStatus = "error"
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}

	if st != nil {
		result.Loader = LoaderInfo{State: st.State(), Records: st.Len()}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	result.Runtime = RuntimeInfo{
		UptimeSeconds: int64(time.Since(processStart).Seconds()),
		HeapUsed:      mem.HeapAlloc,
		Goroutines:    runtime.NumGoroutine(),
		Platform:      runtime.GOOS,
		GoVersion:     runtime.Version(),
	}

	result.Status = "ok"
	if dbStatus == "error" || redisStatus == "error" {
		result.Status = "degraded"
	}
	result.Traffic = traffic
	return result
}

func collectTraffic(ctx context.Context, rdb *redis.Client) TrafficInfo {
	total := intVal(ctx, rdb, middleware.KeyReqTotal)
	failed := intVal(ctx, rdb, middleware.KeyReqErrors)
	resTime := floatVal(ctx, rdb, middleware.KeyResTime)
	resCount := intVal(ctx, rdb, middleware.KeyResCount)

	success := total - failed
	rate := "100"
	if total > 0 {
		rate = fmt.Sprintf("%.1f", float64(success)/float64(total)*100)
	}
	avg := "0"
	if resCount > 0 {
		avg = fmt.Sprintf("%.1f", resTime/float64(resCount))
	}
	return TrafficInfo{
		TotalRequests:   total,
		SuccessCount:    success,
		FailedCount:     failed,
		SuccessRate:     rate,
		AvgResponseTime: avg,
	}
}

func intVal(ctx context.Context, rdb *redis.Client, key string) int {
	s, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func floatVal(ctx context.Context, rdb *redis.Client, key string) float64 {
	s, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// Reset clears the traffic counters. Guarded by the health admin key at the
// handler level.
func Reset(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx,
		middleware.KeyReqTotal,
		middleware.KeyReqErrors,
		middleware.KeyResTime,
		middleware.KeyResCount,
		middleware.KeyLastReq,
	).Err()
}
