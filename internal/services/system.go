package services

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// SystemStats is a point-in-time view of the host the API runs on.
type SystemStats struct {
	CapturedAt        time.Time `json:"captured_at"`
	ProcessRSSBytes   int64     `json:"process_rss_bytes"`
	GoHeapBytes       int64     `json:"go_heap_bytes"`
	Goroutines        int       `json:"goroutines"`
	SystemMemoryTotal int64     `json:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `json:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `json:"disk_total_bytes"`
	DiskUsedBytes     int64     `json:"disk_used_bytes"`
	ProcessCPULoad    float64   `json:"process_cpu_load"`
	SystemCPULoad     float64   `json:"system_cpu_load"`
}

// CaptureSystemStats samples memory, CPU and the disk holding diskPath.
// Probes that fail leave their fields at zero.
func CaptureSystemStats(ctx context.Context, diskPath string) SystemStats {
	var heap runtime.MemStats
	runtime.ReadMemStats(&heap)
	stats := SystemStats{
		CapturedAt:  time.Now().UTC(),
		GoHeapBytes: int64(heap.HeapAlloc),
		Goroutines:  runtime.NumGoroutine(),
	}

	if memStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.SystemMemoryTotal = int64(memStat.Total)
		stats.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	diskStat, err := disk.UsageWithContext(ctx, diskPath)
	if err != nil {
		diskStat, err = disk.UsageWithContext(ctx, "/")
	}
	if err == nil {
		stats.DiskTotalBytes = int64(diskStat.Total)
		stats.DiskUsedBytes = int64(diskStat.Used)
	}
	if proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if rss, err := proc.MemoryInfoWithContext(ctx); err == nil && rss != nil {
			stats.ProcessRSSBytes = int64(rss.RSS)
		}
		if pct, err := proc.CPUPercentWithContext(ctx); err == nil {
			stats.ProcessCPULoad = pct / 100.0
		}
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		stats.SystemCPULoad = pct[0] / 100.0
	}
	return stats
}
