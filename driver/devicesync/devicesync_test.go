package devicesync

import (
	"context"
	"strings"
	"testing"

	"github.com/gobeaver/streamkit"
)

func newTestAdapter() *Adapter {
	return New(NewConn(func(ctx context.Context) (Transport, error) {
		return NewMemTransport(), nil
	}))
}

func TestAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("write read round trip", func(t *testing.T) {
		a := newTestAdapter()
		payload := "device payload"

		err := a.Write(ctx, `\My Documents\task.tsk`, strings.NewReader(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := a.ReadAll(ctx, `\My Documents\task.tsk`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != payload {
			t.Errorf("read %q, want %q", data, payload)
		}
	})

	t.Run("missing file fails with not exist", func(t *testing.T) {
		a := newTestAdapter()

		_, err := a.ReadAll(ctx, `\missing.tsk`)
		if !streamkit.IsNotExist(err) {
			t.Errorf("expected not-exist error, got: %v", err)
		}
	})

	t.Run("file exists never fails", func(t *testing.T) {
		a := newTestAdapter()

		exists, err := a.FileExists(ctx, `\missing.tsk`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected false for missing file")
		}

		a.Write(ctx, `\present.tsk`, strings.NewReader("x"))
		exists, err = a.FileExists(ctx, `\present.tsk`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected true for present file")
		}
	})

	t.Run("create dir is idempotent", func(t *testing.T) {
		a := newTestAdapter()

		if err := a.CreateDir(ctx, `\sub`); err != nil {
			t.Fatalf("first create: %v", err)
		}
		if err := a.CreateDir(ctx, `\sub`); err != nil {
			t.Errorf("second create: %v", err)
		}
	})

	t.Run("separator flavors address the same file", func(t *testing.T) {
		a := newTestAdapter()

		a.Write(ctx, `/sub/f.txt`, strings.NewReader("x"))
		data, err := a.ReadAll(ctx, `\sub\f.txt`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "x" {
			t.Errorf("read %q", data)
		}
	})

	t.Run("list and glob selection", func(t *testing.T) {
		a := newTestAdapter()

		a.CreateDir(ctx, `\flights`)
		a.Write(ctx, `\flights\one.igc`, strings.NewReader("a"))
		a.Write(ctx, `\flights\two.igc`, strings.NewReader("b"))
		a.Write(ctx, `\flights\notes.txt`, strings.NewReader("c"))

		entries, err := a.List(ctx, `\flights`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("got %d entries, want 3", len(entries))
		}

		files, err := streamkit.FindFiles(ctx, a, `\flights`, "*.igc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("got %d matches, want 2", len(files))
		}
	})

	t.Run("list of missing directory fails", func(t *testing.T) {
		a := newTestAdapter()

		if _, err := a.List(ctx, `\missing`); !streamkit.IsNotExist(err) {
			t.Errorf("expected not-exist error, got: %v", err)
		}
	})

	t.Run("checksum reads back over the channel", func(t *testing.T) {
		a := newTestAdapter()

		a.Write(ctx, `\f.bin`, strings.NewReader("abc"))
		sum, err := a.Checksum(ctx, `\f.bin`, streamkit.ChecksumMD5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum != "900150983cd24fb0d6963f7d28e17f72" {
			t.Errorf("md5 = %q", sum)
		}
	})
}

func TestConn(t *testing.T) {
	ctx := context.Background()

	t.Run("dials lazily and reuses the transport", func(t *testing.T) {
		dials := 0
		conn := NewConn(func(ctx context.Context) (Transport, error) {
			dials++
			return NewMemTransport(), nil
		})

		if dials != 0 {
			t.Fatalf("dialed on construction: %d", dials)
		}

		a := New(conn)
		a.Write(ctx, `\a.txt`, strings.NewReader("x"))
		a.ReadAll(ctx, `\a.txt`)
		a.FileExists(ctx, `\a.txt`)

		if dials != 1 {
			t.Errorf("dials = %d, want 1", dials)
		}
	})

	t.Run("close tears down and a later call redials", func(t *testing.T) {
		dials := 0
		conn := NewConn(func(ctx context.Context) (Transport, error) {
			dials++
			return NewMemTransport(), nil
		})

		if _, err := conn.Transport(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := conn.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := conn.Transport(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if dials != 2 {
			t.Errorf("dials = %d, want 2", dials)
		}
	})
}

func TestSharedConn(t *testing.T) {
	t.Run("returns the same connection", func(t *testing.T) {
		first, err := SharedConn("memory")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := SharedConn("memory")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("expected the process-wide connection to be reused")
		}
	})

	t.Run("unknown dialer before the connection exists", func(t *testing.T) {
		// the shared conn may already exist from the subtest above, in
		// which case the name is ignored; exercise the lookup directly
		dialersMu.RLock()
		_, ok := dialers["no-such-dialer"]
		dialersMu.RUnlock()
		if ok {
			t.Fatal("dialer unexpectedly registered")
		}
	})

	t.Run("register dialer", func(t *testing.T) {
		RegisterDialer("loopback-test", func(ctx context.Context) (Transport, error) {
			return NewMemTransport(), nil
		})

		dialersMu.RLock()
		_, ok := dialers["loopback-test"]
		dialersMu.RUnlock()
		if !ok {
			t.Error("dialer not registered")
		}
	})
}
