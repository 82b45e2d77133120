package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	dayLayout        = "2006-01-02"
	MaxRetentionDays = 7
)

// DailyFile writes to dir/app-YYYY-MM-DD.log, switching files when the day
// changes and pruning files older than the retention window.
type DailyFile struct {
	mu            sync.Mutex
	dir           string
	retentionDays int
	day           string
	file          *os.File
	now           func() time.Time
}

func OpenDailyFile(dir string, retentionDays int) (*DailyFile, error) {
	return openDailyFile(dir, retentionDays, time.Now)
}

func openDailyFile(dir string, retentionDays int, now func() time.Time) (*DailyFile, error) {
	if retentionDays <= 0 || retentionDays > MaxRetentionDays {
		retentionDays = MaxRetentionDays
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	d := &DailyFile{dir: dir, retentionDays: retentionDays, now: now}
	if err := d.rotate(now().Format(dayLayout)); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if day := d.now().Format(dayLayout); day != d.day {
		if err := d.rotate(day); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

func (d *DailyFile) rotate(day string) error {
	name := filepath.Join(d.dir, fmt.Sprintf("app-%s.log", day))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if d.file != nil {
		_ = d.file.Close()
	}
	d.file = file
	d.day = day
	d.prune()
	return nil
}

func (d *DailyFile) prune() {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return
	}
	current, err := time.Parse(dayLayout, d.day)
	if err != nil {
		return
	}
	cutoff := current.AddDate(0, 0, -(d.retentionDays - 1))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		logDay, err := time.Parse(dayLayout, strings.TrimSuffix(strings.TrimPrefix(name, "app-"), ".log"))
		if err != nil {
			continue
		}
		if logDay.Before(cutoff) {
			_ = os.Remove(filepath.Join(d.dir, name))
		}
	}
}
