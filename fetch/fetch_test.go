// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fetch

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestFileDownload(t *testing.T) {
	body := []byte{0x00, 0x01, 0x02}
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write(body)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "local.bin")
	if err := File(srv.URL, dest); err != nil {
		t.Fatalf("File: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading dest: %v", err)
	}
	if len(got) != 3 || got[0] != 0x00 || got[1] != 0x01 || got[2] != 0x02 {
		t.Errorf("dest bytes = % x, want % x", got, body)
	}
	if hits != 1 {
		t.Errorf("requests = %d, want 1", hits)
	}
}

// TestFileIdempotent: N calls with the same dest perform exactly one
// network request; the cache-hit path never touches the network.
func TestFileIdempotent(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "data.npz")
	for i := 0; i < 4; i++ {
		if err := File(srv.URL, dest); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("requests = %d, want 1", hits)
	}
}

func TestFilePresentNoNetwork(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "have.bin")
	if err := os.WriteFile(dest, []byte("original content"), 0644); err != nil {
		t.Fatal(err)
	}
	// url is unreachable -- must not matter on the cache-hit path
	if err := File("http://127.0.0.1:1/nope", dest); err != nil {
		t.Fatalf("File with existing dest: %v", err)
	}
	got, _ := os.ReadFile(dest)
	if string(got) != "original content" {
		t.Errorf("existing file modified: %q", got)
	}
}

func TestFileConnFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // now refuses connections

	dest := filepath.Join(t.TempDir(), "missing.bin")
	err := File(url, dest)
	var ce *ConnError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConnError", err)
	}
	if _, serr := os.Stat(dest); !os.IsNotExist(serr) {
		t.Errorf("dest exists after connection failure")
	}
}

func TestFileBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "missing.bin")
	err := File(srv.URL, dest)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != 404 {
		t.Errorf("Code = %d, want 404", se.Code)
	}
	if _, serr := os.Stat(dest); !os.IsNotExist(serr) {
		t.Errorf("dest exists after 404")
	}
}

func TestFileWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "no", "such", "dir", "f.bin")
	err := File(srv.URL, dest)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
}

func TestFileWarn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	dest := filepath.Join(t.TempDir(), "warn.bin")
	ok, err := FileWarn(url, dest)
	if err != nil {
		t.Fatalf("network failure must be downgraded, got: %v", err)
	}
	if ok {
		t.Errorf("ok = true with unreachable url")
	}

	// write failures are not downgraded
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv2.Close()
	_, err = FileWarn(srv2.URL, filepath.Join(t.TempDir(), "no", "dir", "f.bin"))
	if err == nil {
		t.Errorf("write failure was swallowed")
	}
}
