// Package streamkit provides a unified byte-stream abstraction over files
// that live either on the local filesystem or on a tethered mobile device
// reachable through a device-synchronization channel.
//
// The storage backend owning a path is decided from the path syntax alone:
//
//   - \subdir\file.txt — single leading backslash: tethered device
//   - \\server\share\file.txt — UNC network path, served by the local driver
//   - anything else — local filesystem
//
// # Drivers
//
// Backends register themselves for a path [Kind] via blank imports:
//
//	import (
//	    _ "github.com/gobeaver/streamkit/driver/devicesync"
//	    _ "github.com/gobeaver/streamkit/driver/local"
//	)
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	// Read a file (fully materialized into memory)
//	r, err := streamkit.Open(ctx, `profiles\task.tsk`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := r.Bytes()
//
//	// Write a file (buffered, committed on Close)
//	w, err := streamkit.Create(ctx, `\My Documents\task.tsk`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Write(data)
//	if err := w.Close(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a directory chain on whichever backend owns the path
//	err = streamkit.EnsureDir(ctx, `\My Documents\tasks`)
//
//	// Push a local file to the device, verifying the transfer
//	err = streamkit.Copy(ctx, "task.tsk", `\My Documents\task.tsk`,
//	    streamkit.WithVerify(streamkit.ChecksumCRC32))
//
// # Optional Capabilities
//
// Backends may implement optional capability interfaces. Use type assertions
// to check for support:
//
//	if lister, ok := b.(streamkit.CanList); ok {
//	    entries, err := lister.List(ctx, `\My Documents`)
//	}
//
// # Concurrency
//
// The stream layer is synchronous and blocking. The two pieces of process
// state it touches — the working directory during local reads and the shared
// device connection — are mutex-guarded inside the drivers, so backends can
// be shared between goroutines even though individual streams cannot.
package streamkit
