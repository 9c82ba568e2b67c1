package local

import "github.com/gobeaver/streamkit"

func init() {
	factory := func(cfg *streamkit.Config) (streamkit.Backend, error) {
		return New(), nil
	}
	// UNC network paths go through the local filesystem as well; the OS
	// resolves the server and share.
	streamkit.RegisterBackend(streamkit.KindLocal, factory)
	streamkit.RegisterBackend(streamkit.KindNetwork, factory)
}
