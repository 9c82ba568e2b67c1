package streamkit

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
)

// Copy transfers the file at src to dst, resolving the backend for each side
// independently, so a local file can be pushed to the tethered device and
// back. By default an existing destination is refused; pass
// WithOverwrite(true) to replace it. With WithVerify (or the configured
// default) the destination is read back after the transfer and its checksum
// compared against the source content.
func Copy(ctx context.Context, src, dst string, opts ...Option) error {
	o := processOptions(opts...)

	cfg, err := defaultConfig()
	if err != nil {
		return &PathError{Op: "copy", Path: src, Err: err}
	}

	srcB, err := backendFor(Classify(src))
	if err != nil {
		return &PathError{Op: "copy", Path: src, Err: err}
	}
	dstB, err := backendFor(Classify(dst))
	if err != nil {
		return &PathError{Op: "copy", Path: dst, Err: err}
	}

	if !o.Overwrite {
		exists, err := dstB.FileExists(ctx, dst)
		if err != nil {
			return err
		}
		if exists {
			return &PathError{Op: "copy", Path: dst, Err: ErrExist}
		}
	}

	verify := o.Verify
	if verify == "" && cfg.VerifyCopies {
		verify = ChecksumAlgorithm(cfg.VerifyAlgorithm)
	}

	rc, err := srcB.Read(ctx, src)
	if err != nil {
		return err
	}
	defer rc.Close()

	if verify == "" {
		return dstB.Write(ctx, dst, rc, opts...)
	}

	h, err := NewHasher(verify)
	if err != nil {
		return &PathError{Op: "copy", Path: dst, Err: err}
	}

	// hash the source content while it streams to the destination
	if err := dstB.Write(ctx, dst, io.TeeReader(rc, h), opts...); err != nil {
		return err
	}

	want := hex.EncodeToString(h.Sum(nil))
	ok, err := VerifyChecksum(ctx, dstB, dst, want, verify)
	if err != nil {
		return err
	}
	if !ok {
		return &PathError{
			Op:   "copy",
			Path: dst,
			Err:  fmt.Errorf("%s checksum mismatch after transfer", verify),
		}
	}

	return nil
}
