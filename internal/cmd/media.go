package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/joern1811/wachatview/internal/adapter/renderer"
	"github.com/joern1811/wachatview/internal/domain"
)

var mediaKind string

var mediaCmd = &cobra.Command{
	Use:   "media <export>",
	Short: "List attachments grouped by kind",
	Long: `Lists every attachment referenced by the chat, grouped as photos,
videos, audio, stickers and documents. Files referenced by a message but
absent from the export are shown as (missing).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind domain.AttachmentKind
		if mediaKind != "" {
			kind = domain.AttachmentKind(mediaKind)
			if !lo.Contains(domain.AttachmentKinds, kind) {
				return fmt.Errorf("unknown --kind %q (expected one of %v)", mediaKind, domain.AttachmentKinds)
			}
		}

		cfg, svc, filter, err := setup(cmd)
		if err != nil {
			return err
		}

		groups, err := svc.Gallery(cmd.Context(), args[0], filter)
		if err != nil {
			return err
		}
		if kind != "" {
			groups = lo.Filter(groups, func(g domain.MediaGroup, _ int) bool {
				return g.Kind == kind
			})
		}

		renderer.RenderGallery(cmd.OutOrStdout(), groups, domain.ParseLocale(cfg.Locale))
		return nil
	},
}

func init() {
	mediaCmd.Flags().StringVar(&mediaKind, "kind", "", "Only list one kind: photo, video, audio, sticker or document")
	rootCmd.AddCommand(mediaCmd)
}
