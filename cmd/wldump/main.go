// Command wldump connects to a Wayland compositor, lists the globals it
// advertises, and optionally traces every message crossing the wire — the
// Go equivalent of running a client under WAYLAND_DEBUG=1.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/socket"
	"github.com/bnema/wlcore/transport"
	"github.com/bnema/wlcore/wlerr"
)

func main() {
	var trace bool
	var socketName string

	root := &cobra.Command{
		Use:   "wldump",
		Short: "Connect to a Wayland compositor and list its globals",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()
			sugar := logger.Sugar()

			path, err := socketPath(socketName)
			if err != nil {
				return err
			}

			tr, err := transport.DialUnix(path)
			if err != nil {
				return fmt.Errorf("connect to %s: %w", path, err)
			}
			defer tr.Close()

			sock := socket.New(transport.NewAny(tr))
			conn := connection.New(sock, nil, sugar)
			conn.SetTrace(trace)

			reg, err := connection.BlockingCollectInitialGlobals(conn)
			if err != nil {
				return fmt.Errorf("collect globals: %w", err)
			}

			for _, g := range reg.Globals() {
				fmt.Printf("global %-4d %-40s v%d\n", g.Name, g.Interface, g.Version)
			}
			return nil
		},
	}
	root.Flags().BoolVar(&trace, "trace", false, "log every request/event crossing the wire")
	root.Flags().StringVar(&socketName, "socket", "", "compositor socket name (default: $WAYLAND_DISPLAY)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// socketPath resolves the compositor socket, following the same
// $XDG_RUNTIME_DIR / $WAYLAND_DISPLAY convention every Wayland client
// uses.
func socketPath(name string) (string, error) {
	if name == "" {
		name = os.Getenv("WAYLAND_DISPLAY")
		if name == "" {
			name = "wayland-0"
		}
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", &wlerr.ConnectError{Detail: "XDG_RUNTIME_DIR not set", Err: wlerr.ErrNotEnoughEnvVars}
	}
	return filepath.Join(runtimeDir, name), nil
}
