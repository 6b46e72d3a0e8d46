package orgBackup

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/internal/sync"
)

func NewCmdBackup(s *state.State) *cobra.Command {
	var bucket, prefix, region string
	var list bool

	cmd := &cobra.Command{
		Use:     "backup",
		Aliases: []string{"b"},
		Short:   "Upload the arrangement to an S3 bucket",
		Long: heredoc.Doc(`
			Backup uploads the arrangement document to S3 under a timestamped
			key. Bucket settings given as flags are saved to the config, so
			later backups can omit them. With --list, prints the stored
			backups instead of uploading.
		`),
		Example: heredoc.Doc(`
			studio org backup --bucket my-backups --region us-east-1
			studio org backup
			studio org backup --list
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket != "" || prefix != "" || region != "" {
				// Merge with the saved settings; SetBackup replaces all three.
				current := s.Config.Backup
				if bucket == "" {
					bucket = current.Bucket
				}
				if prefix == "" {
					prefix = current.Prefix
				}
				if region == "" {
					region = current.Region
				}
				if err := s.Config.SetBackup(bucket, prefix, region); err != nil {
					return err
				}
			}

			syncer, err := sync.NewSyncer(cmd.Context(), s.Config.Backup)
			if err != nil {
				return err
			}

			if list {
				entries, err := syncer.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No backups found.")
					return nil
				}
				for _, entry := range entries {
					fmt.Printf("%s  %s  %d bytes\n",
						entry.LastModified.Format("2006-01-02 15:04"), entry.Key, entry.Size)
				}
				return nil
			}

			raw, err := organizer.EncodeDocument(s.Organizer.Snapshot())
			if err != nil {
				return err
			}

			key, err := syncer.Backup(cmd.Context(), raw)
			if err != nil {
				return err
			}

			fmt.Printf("Backed up arrangement to s3://%s/%s.\n", s.Config.Backup.Bucket, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to store backups in (saved to config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket (saved to config)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region of the bucket (saved to config)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List stored backups instead of uploading")

	return cmd
}
