// Command wlscanner generates Go protocol bindings from Wayland protocol
// XML files, the same role wayland-scanner plays for C clients.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/wlcore/protoscan"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	var xmlPath, outPath, pkgName string

	root := &cobra.Command{
		Use:   "wlscanner",
		Short: "Generate Go protocol bindings from Wayland protocol XML",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Parse a protocol XML file and emit a Go source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(xmlPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", xmlPath, err)
			}
			defer in.Close()

			proto, err := protoscan.Parse(in)
			if err != nil {
				return err
			}
			sugar.Infow("parsed protocol", "name", proto.Name, "interfaces", len(proto.Interfaces))

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer out.Close()

			if err := protoscan.Generate(proto, pkgName, out); err != nil {
				return err
			}
			sugar.Infow("wrote generated source", "path", outPath)
			return nil
		},
	}
	generateCmd.Flags().StringVar(&xmlPath, "xml", "", "path to protocol XML file (required)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "path to write generated Go source (required)")
	generateCmd.Flags().StringVar(&pkgName, "package", "", "Go package name for the generated file (required)")
	generateCmd.MarkFlagRequired("xml")
	generateCmd.MarkFlagRequired("out")
	generateCmd.MarkFlagRequired("package")

	root.AddCommand(generateCmd)

	if err := root.Execute(); err != nil {
		sugar.Fatalw("wlscanner failed", "err", err)
	}
}
