package streamkit

import (
	"context"
	"testing"
)

func TestCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("copies local file to device", func(t *testing.T) {
		t.Cleanup(testLocal.reset)
		t.Cleanup(testDevice.reset)
		testLocal.put("task.tsk", []byte("task payload"))

		if err := Copy(ctx, "task.tsk", `\My Documents\task.tsk`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := testDevice.ReadAll(ctx, `\My Documents\task.tsk`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "task payload" {
			t.Errorf("copied %q", data)
		}
	})

	t.Run("verifies the transfer when requested", func(t *testing.T) {
		t.Cleanup(testLocal.reset)
		t.Cleanup(testDevice.reset)
		testLocal.put("task.tsk", []byte("task payload"))

		err := Copy(ctx, "task.tsk", `\My Documents\task.tsk`, WithVerify(ChecksumXXHash))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refuses existing destination by default", func(t *testing.T) {
		t.Cleanup(testLocal.reset)
		t.Cleanup(testDevice.reset)
		testLocal.put("src.txt", []byte("new"))
		testDevice.put(`\dst.txt`, []byte("old"))

		err := Copy(ctx, "src.txt", `\dst.txt`)
		if !IsExist(err) {
			t.Fatalf("expected already-exists error, got: %v", err)
		}

		// destination untouched
		data, _ := testDevice.ReadAll(ctx, `\dst.txt`)
		if string(data) != "old" {
			t.Errorf("destination modified: %q", data)
		}
	})

	t.Run("overwrites when allowed", func(t *testing.T) {
		t.Cleanup(testLocal.reset)
		t.Cleanup(testDevice.reset)
		testLocal.put("src.txt", []byte("new"))
		testDevice.put(`\dst.txt`, []byte("old"))

		if err := Copy(ctx, "src.txt", `\dst.txt`, WithOverwrite(true)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, _ := testDevice.ReadAll(ctx, `\dst.txt`)
		if string(data) != "new" {
			t.Errorf("destination = %q, want %q", data, "new")
		}
	})

	t.Run("missing source fails with not exist", func(t *testing.T) {
		t.Cleanup(testLocal.reset)
		t.Cleanup(testDevice.reset)

		err := Copy(ctx, "missing.txt", `\dst.txt`)
		if !IsNotExist(err) {
			t.Errorf("expected not-exist error, got: %v", err)
		}
	})
}
