package main

import (
	"context"
	"path"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/glamorous-css/website/internal/config"
	"github.com/glamorous-css/website/internal/errors"
	"github.com/glamorous-css/website/internal/publish"
)

func exportCmd() *cobra.Command {
	var (
		out    string
		bucket string
		prefix string
		lang   string
		base   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the site as static files",
		Long: `Render every page and asset without the live session and write
them to a directory (--out) or upload them to an S3 bucket (--bucket).
Each run renders one locale. The default locale is written at the root
and the others under a directory named after the locale, so exporting
every locale into the same target yields one site whose language links
work without a server. --base sets the URL path the target is served
under.
AWS credentials and region come from the standard AWS environment and
shared config files.`,
		Example: `  website export --out dist
  website export --bucket glamorous-site --prefix docs
  website export --out dist --lang es
  website export --bucket glamorous-site --prefix docs --base /docs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if bucket == "" && out == "" {
				bucket, prefix = cfg.Export.Bucket, firstNonEmpty(prefix, cfg.Export.Prefix)
			}
			switch {
			case out == "" && bucket == "":
				return errors.New("W020")
			case out != "" && bucket != "":
				return errors.New("W021")
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			tag := cfg.Locale()
			if lang != "" {
				parsed, ok := a.site.Locales.Parse(lang)
				if !ok {
					return errors.New("W006").WithDetail("got %q", lang)
				}
				tag = parsed
			}

			store, err := openStore(cmd.Context(), out, bucket, prefix)
			if err != nil {
				return err
			}

			a.site.Base = basePath(firstNonEmpty(base, cfg.Export.Base))

			exp := &publish.Exporter{Site: a.site, Store: store, Lang: tag, Logger: a.logger}
			res, err := exp.Export(cmd.Context())
			if err != nil {
				return err
			}
			success("Exported %d pages and %d assets", res.Pages, res.Assets)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&base, "base", "", "URL path the exported site is served under (default: WEBSITE_BASE_PATH)")
	cmd.Flags().StringVar(&lang, "lang", "", "Locale to render (default: WEBSITE_DEFAULT_LOCALE)")

	return cmd
}

func openStore(ctx context.Context, out, bucket, prefix string) (publish.Store, error) {
	if out != "" {
		store, err := publish.NewDiskStore(out)
		if err != nil {
			return nil, errors.New("W023").WithDetail("%s", out).Wrap(err)
		}
		return store, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.New("W024").WithDetail("load AWS config").Wrap(err)
	}
	return publish.NewS3Store(s3.NewFromConfig(awsCfg), bucket, prefix), nil
}

// basePath cleans a URL path prefix. The root maps to the empty prefix.
func basePath(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimRight(path.Clean("/"+p), "/")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
