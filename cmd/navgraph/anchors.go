package main

import (
	"fmt"
	"os"
	"path/filepath"

	"wayfinder/internal/errors"
	"wayfinder/internal/infra/qrcode"

	"github.com/spf13/cobra"
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "Render a printable QR marker for every anchor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, _, err := loadBuilding(cmd)
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		size, _ := cmd.Flags().GetInt("size")
		level, _ := cmd.Flags().GetString("level")

		if len(data.Anchors) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No anchors defined")

			return nil
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", outDir)
		}

		qr := qrcode.NewQRCodeService(size, level)
		for _, anchor := range data.Anchors {
			png, err := qr.GenerateAnchorQR(anchor)
			if err != nil {
				return errors.Wrapf(err, "anchor %q", anchor.ID)
			}

			path := filepath.Join(outDir, anchor.ID+".png")
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  ✅ %s (%s) -> %s\n", anchor.ID, anchor.Label, path)
		}

		return nil
	},
}

func init() {
	anchorsCmd.Flags().String("out", "./anchors", "Output directory for PNG markers")
	anchorsCmd.Flags().Int("size", 256, "Marker size in pixels")
	anchorsCmd.Flags().String("level", "M", "Error correction level (L, M, Q, H)")

	rootCmd.AddCommand(anchorsCmd)
}
