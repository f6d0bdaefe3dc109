package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame timing and level entity counts for the hosts.
// Counters are atomic so a host may read them while its loop writes.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount     atomic.Uint64
	frameTime      atomic.Uint64 // nanoseconds, last frame
	totalFrameTime atomic.Uint64 // nanoseconds, all frames

	// Phase metrics
	updateTime atomic.Uint64
	drawTime   atomic.Uint64

	// Game-specific metrics
	moversActive      atomic.Int32
	projectilesActive atomic.Int32
	eventsRaised      atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	startTime    time.Time

	// Configuration
	enableDetailed bool
	lowFPS         float64
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
		lowFPS:         30,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.startTime))
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	nanos := uint64(d.Nanoseconds())
	pm.frameTime.Store(nanos)
	total := pm.totalFrameTime.Add(nanos)
	count := pm.frameCount.Add(1)

	if pm.enableDetailed {
		pm.mutex.Lock()
		pm.avgFrameTime = float64(total) / float64(count)
		pm.mutex.Unlock()
	}
}

// UpdateGameMetrics records the entity counts of the running level
func (pm *PerformanceMonitor) UpdateGameMetrics(movers, projectiles int32, events uint64) {
	pm.moversActive.Store(movers)
	pm.projectilesActive.Store(projectiles)
	pm.eventsRaised.Add(events)
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	// Store timing based on function name
	switch name {
	case "update":
		pm.updateTime.Store(uint64(duration.Nanoseconds()))
	case "draw":
		pm.drawTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}

// GameMetrics is a snapshot of the monitor
type GameMetrics struct {
	Frames            uint64
	MoversActive      int32
	ProjectilesActive int32
	EventsRaised      uint64
	FramesPerSecond   float64
	MemoryUsageMB     uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() GameMetrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return GameMetrics{
		Frames:            pm.frameCount.Load(),
		MoversActive:      pm.moversActive.Load(),
		ProjectilesActive: pm.projectilesActive.Load(),
		EventsRaised:      pm.eventsRaised.Load(),
		FramesPerSecond:   pm.currentFPS(),
		MemoryUsageMB:     memStats.Alloc / 1024 / 1024,
	}
}

func (pm *PerformanceMonitor) currentFPS() float64 {
	frameTime := pm.frameTime.Load()
	if frameTime == 0 {
		return 0
	}
	return float64(time.Second) / float64(frameTime)
}

// GetDetailedStats returns detailed statistics keyed for structured logging
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	avg := pm.avgFrameTime
	uptime := time.Since(pm.startTime)
	pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":     uptime.Seconds(),
		"frame_count":        pm.frameCount.Load(),
		"avg_frame_time_ms":  avg / float64(time.Millisecond),
		"update_time_ms":     float64(pm.updateTime.Load()) / float64(time.Millisecond),
		"draw_time_ms":       float64(pm.drawTime.Load()) / float64(time.Millisecond),
		"current_fps":        pm.currentFPS(),
		"movers_active":      pm.moversActive.Load(),
		"projectiles_active": pm.projectilesActive.Load(),
		"events_raised":      pm.eventsRaised.Load(),
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
		"goroutines":         runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	if fps := pm.currentFPS(); fps > 0 && fps < pm.lowFPS {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below 30 FPS",
			Value:     fps,
			Threshold: pm.lowFPS,
			Timestamp: time.Now(),
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables running averages
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.totalFrameTime.Store(0)
	pm.updateTime.Store(0)
	pm.drawTime.Store(0)
	pm.moversActive.Store(0)
	pm.projectilesActive.Store(0)
	pm.eventsRaised.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
