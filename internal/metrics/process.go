package metrics

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessSample is a point-in-time reading of this process's resource usage.
type ProcessSample struct {
	// RSS is resident memory in bytes.
	RSS uint64 `json:"rss"`

	// CPUPercent is cumulative CPU usage as a percentage.
	CPUPercent float64 `json:"cpu_percent"`
}

// SampleProcess reads memory and CPU usage for the current process.
func SampleProcess() (ProcessSample, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessSample{}, fmt.Errorf("failed to open process: %w", err)
	}

	var sample ProcessSample
	if mem, memErr := proc.MemoryInfo(); memErr == nil {
		sample.RSS = mem.RSS
	}
	if cpu, cpuErr := proc.CPUPercent(); cpuErr == nil {
		sample.CPUPercent = cpu
	}
	return sample, nil
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
