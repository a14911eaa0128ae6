package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/tickit/internal/logging"
	"github.com/td0m/tickit/pkg/persist"
	"github.com/td0m/tickit/pkg/storage"
	"github.com/td0m/tickit/pkg/task"
)

var (
	years  = flag.Int("years", 10, "Years of tasks to generate")
	perDay = flag.Int("per-day", 30, "Tasks created per day")
	dir    = flag.String("dir", "", "Data directory, a temp dir when empty")
)

func main() {
	flag.Parse()
	ctx := context.Background()
	total := 365 * *perDay * *years

	dataDir := *dir
	if dataDir == "" {
		tmp, err := os.MkdirTemp("", "tickit-estimate-")
		check(err)
		defer os.RemoveAll(tmp)
		dataDir = tmp
	}
	backend, err := persist.InDir(dataDir)
	check(err)
	logger := logging.New(os.Stderr, logging.Options{Level: "warn", Format: "text"})
	store := storage.New(backend, storage.WithLogger(logger))

	tasks := generate(total, time.Now())

	writeTime := measureTime(func() {
		check(store.SaveTasks(ctx, tasks))
	})

	var read []task.Task
	readTime := measureTime(func() {
		read = store.GetTasks(ctx)
	})
	if len(read) != total {
		check(fmt.Errorf("read %d tasks, wrote %d", len(read), total))
	}

	info, err := os.Stat(filepath.Join(dataDir, storage.TasksKey+".json"))
	check(err)
	fmt.Printf("Tasks: %d years, %d per day (%d total)\n", *years, *perDay, total)
	fmt.Printf("File size: %dMB\n", info.Size()/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
}

// generate spreads n tasks over the days before now, a third of them done
func generate(n int, now time.Time) []task.Task {
	tasks := make([]task.Task, 0, n)
	for i := 0; i < n; i++ {
		created := now.Add(-time.Duration(rand.Intn(365*24)) * time.Hour * time.Duration(1+i%10))
		t, err := task.New("task "+randomString(20), randomString(rand.Intn(80)), nil, created)
		check(err)
		if i%3 == 0 {
			t.Status = task.Completed
			t.UpdatedAt = task.Stamp(created.Add(time.Hour))
		}
		if i%4 == 0 {
			due := task.Stamp(created.AddDate(0, 0, 7))
			t.DueDate = &due
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

func randomString(l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
