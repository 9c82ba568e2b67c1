package devicesync

import "github.com/gobeaver/streamkit"

func init() {
	streamkit.RegisterBackend(streamkit.KindDeviceSync, func(cfg *streamkit.Config) (streamkit.Backend, error) {
		conn, err := SharedConn(cfg.DeviceDialer)
		if err != nil {
			return nil, err
		}
		return New(conn), nil
	})
}
