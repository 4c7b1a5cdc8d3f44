package handlers

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/amarnathcjd/gogram/telegram"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"

	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

var startTime = time.Now()

// statsHandler handles the /stats command, reporting member and message
// counts for the current group.
func statsHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())

	ctx, cancel := db.Ctx()
	defer cancel()

	total, err := db.Instance.GetTotalMessages(ctx, chatID)
	if err != nil {
		_, err = m.Reply("❌ Failed to load activity stats: " + err.Error())
		return err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>📊 Stats for %s</b>\n\n", chatTitle(m)))
	if _, members, err := m.Client.GetChatMembers(chatID, &telegram.ParticipantOptions{SleepThresholdMs: 3000}); err == nil {
		sb.WriteString(fmt.Sprintf("‣ <b>Members:</b> %d\n", members))
	}
	sb.WriteString(fmt.Sprintf("‣ <b>Messages recorded:</b> %d\n", total))

	_, err = m.Reply(sb.String())
	return err
}

// topUsersHandler handles the /topusers command, listing the five most
// active members of the group.
func topUsersHandler(m *telegram.NewMessage) error {
	chatID, _ := getPeerId(m.Client, m.ChatID())

	ctx, cancel := db.Ctx()
	defer cancel()

	entries, err := db.Instance.GetTopUsers(ctx, chatID, 5)
	if err != nil {
		_, err = m.Reply("❌ Failed to load activity stats: " + err.Error())
		return err
	}
	if len(entries) == 0 {
		_, err = m.Reply("No activity has been recorded in this group yet.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("<b>🏆 Most active members:</b>\n\n")
	for i, e := range entries {
		name := strconv.FormatInt(e.UserID, 10)
		if u, err := db.Instance.GetUser(ctx, e.UserID); err == nil && u != nil {
			name = u.FirstName
		}
		sb.WriteString(fmt.Sprintf("%d. %s — %d messages\n", i+1, name, e.MessageCount))
	}

	_, err = m.Reply(sb.String())
	return err
}

// AppStats holds both process and system info.
type AppStats struct {
	Uptime          string
	ProcessID       int32
	NumGoroutines   int
	CPUPercent      float64
	MemUsed         string
	MemPerc         float64
	MemLimit        string
	GoVersion       string
	Arch            string
	OS              string
	SystemCPUUsage  float64
	SystemMemUsed   string
	SystemMemTotal  string
	SystemDiskUsed  string
	SystemDiskTotal string
}

// Converts bytes to human-readable string.
func humanBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Reads memory limit if running inside Docker.
func readContainerMemLimit() uint64 {
	if data, err := os.ReadFile("/sys/fs/cgroup/memory/memory.limit_in_bytes"); err == nil {
		if limit, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64); err == nil {
			if limit > 0 && limit < (1<<60) {
				return limit
			}
		}
	}

	if data, err := os.ReadFile("/sys/fs/cgroup/memory.max"); err == nil {
		val := strings.TrimSpace(string(data))
		if val != "max" {
			if limit, err := strconv.ParseUint(val, 10, 64); err == nil && limit > 0 && limit < (1<<60) {
				return limit
			}
		}
	}
	return 0
}

// Collects both app and system-level stats.
func gatherAppStats() (*AppStats, error) {
	pid := int32(os.Getpid())
	proc, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}

	cpuPercent, _ := proc.CPUPercent()
	memInfo, _ := proc.MemoryInfo()
	memPerc, _ := proc.MemoryPercent()

	vmem, _ := mem.VirtualMemory()
	cpus, _ := cpu.Percent(0, false)

	rootPath := "/"
	if runtime.GOOS == "windows" {
		rootPath = "C:\\"
	}
	diskUsage, _ := disk.Usage(rootPath)

	stats := &AppStats{
		Uptime:          time.Since(startTime).Round(time.Second).String(),
		ProcessID:       pid,
		NumGoroutines:   runtime.NumGoroutine(),
		CPUPercent:      cpuPercent,
		MemUsed:         humanBytes(memInfo.RSS),
		MemPerc:         float64(memPerc),
		GoVersion:       runtime.Version(),
		Arch:            fmt.Sprintf("%s (%d CPU cores)", runtime.GOARCH, runtime.NumCPU()),
		OS:              runtime.GOOS,
		SystemMemUsed:   humanBytes(vmem.Used),
		SystemMemTotal:  humanBytes(vmem.Total),
		SystemDiskUsed:  humanBytes(diskUsage.Used),
		SystemDiskTotal: humanBytes(diskUsage.Total),
	}
	if len(cpus) > 0 {
		stats.SystemCPUUsage = cpus[0]
	}

	if limit := readContainerMemLimit(); limit > 0 {
		stats.MemLimit = humanBytes(limit)
	}

	return stats, nil
}

// sysStatsHandler handles the /sysstats command.
func sysStatsHandler(m *telegram.NewMessage) error {
	sysMsg, err := m.Reply("📊 Gathering system stats...")
	if err != nil {
		return err
	}

	info, err := gatherAppStats()
	if err != nil {
		_, _ = sysMsg.Edit(fmt.Sprintf("❌ Failed to gather stats: %v", err))
		return nil
	}

	ctx, cancel := db.Ctx()
	defer cancel()
	chats, _ := db.Instance.GetAllChats(ctx)
	users, _ := db.Instance.CountUsers(ctx)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>📊 %s — System Stats</b>\n", m.Client.Me().FirstName))
	sb.WriteString(strings.Repeat("-", 40) + "\n\n")

	sb.WriteString("<b>App</b>\n")
	sb.WriteString(fmt.Sprintf("‣ Uptime: %s\n", info.Uptime))
	sb.WriteString(fmt.Sprintf("‣ CPU: %.2f%%\n", info.CPUPercent))
	if info.MemLimit != "" {
		sb.WriteString(fmt.Sprintf("‣ Memory: %s / %s (%.2f%%)\n", info.MemUsed, info.MemLimit, info.MemPerc))
	} else {
		sb.WriteString(fmt.Sprintf("‣ Memory: %s (%.2f%%)\n", info.MemUsed, info.MemPerc))
	}
	sb.WriteString(fmt.Sprintf("‣ Goroutines: %d\n", info.NumGoroutines))
	sb.WriteString(fmt.Sprintf("‣ Chats: %d | Users: %d\n", len(chats), users))
	sb.WriteString(fmt.Sprintf("‣ Go: %s\n", info.GoVersion))
	sb.WriteString(fmt.Sprintf("‣ Platform: %s %s\n\n", info.OS, info.Arch))

	sb.WriteString("<b>Server</b>\n")
	sb.WriteString(fmt.Sprintf("‣ CPU: %.2f%%\n", info.SystemCPUUsage))
	sb.WriteString(fmt.Sprintf("‣ RAM: %s / %s\n", info.SystemMemUsed, info.SystemMemTotal))
	sb.WriteString(fmt.Sprintf("‣ Disk: %s / %s\n", info.SystemDiskUsed, info.SystemDiskTotal))
	sb.WriteString(strings.Repeat("-", 40))

	_, _ = sysMsg.Edit(sb.String())
	return nil
}
