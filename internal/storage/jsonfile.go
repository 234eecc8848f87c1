package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFileKV keeps every key in a single JSON object file, rewritten
// whole on each Set. Writes go through a temp file and rename so a
// crash mid-write never leaves a half-written store behind.
type JSONFileKV struct {
	mu       sync.Mutex
	filename string
}

func NewJSONFileKV(filename string) (*JSONFileKV, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONFileKV{filename: filename}, nil
}

func (f *JSONFileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kv, err := f.read()
	if err != nil {
		return "", false, err
	}
	value, ok := kv[key]
	return value, ok, nil
}

func (f *JSONFileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kv, err := f.read()
	if err != nil {
		return err
	}
	kv[key] = value

	data, err := json.Marshal(kv)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	tmp := f.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.filename); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func (f *JSONFileKV) Close() error {
	return nil
}

func (f *JSONFileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(f.filename)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.filename, err)
	}
	kv := map[string]string{}
	if len(data) == 0 {
		return kv, nil
	}
	if err := json.Unmarshal(data, &kv); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", f.filename, err)
	}
	return kv, nil
}
