package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed blogs.yaml
var defaultSeed []byte

type seedFile struct {
	Posts []seedPost `yaml:"posts"`
}

type seedPost struct {
	Slug         string `yaml:"slug"`
	CardPosition int    `yaml:"card_position"`
	Title        string `yaml:"title"`
	Meta         string `yaml:"meta"`
	Summary      string `yaml:"summary"`
	Content      string `yaml:"content"`
	Published    *bool  `yaml:"published"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file        string
		reset       bool
		databaseURL string
	)

	cmd := &cobra.Command{
		Use:   "seed-blogs",
		Short: "Insert or update blog posts from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadDotEnv()
			cfg := config.Load()
			logger.Init(cfg.LogLevel)

			if databaseURL == "" {
				databaseURL = cfg.DatabaseURL
			}

			data := defaultSeed
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read seed file: %w", err)
				}
				data = raw
			}

			inputs, err := parseSeed(data)
			if err != nil {
				return err
			}

			if err := db.Init(databaseURL); err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}

			if err := seed(cmd.Context(), db.DB, inputs, reset); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Blog content updated successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with posts (defaults to the embedded content)")
	cmd.Flags().BoolVar(&reset, "clear", true, "Delete every existing blog row before seeding")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Database URL (defaults to DATABASE_URL)")
	return cmd
}

func parseSeed(data []byte) ([]service.BlogInput, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(file.Posts) == 0 {
		return nil, errors.New("seed file contains no posts")
	}

	seen := make(map[string]struct{}, len(file.Posts))
	inputs := make([]service.BlogInput, 0, len(file.Posts))
	for i, post := range file.Posts {
		slug := strings.TrimSpace(post.Slug)
		if slug == "" {
			return nil, fmt.Errorf("post %d: %w", i+1, service.ErrSlugRequired)
		}
		if _, dup := seen[slug]; dup {
			return nil, fmt.Errorf("post %d: duplicate slug %q", i+1, slug)
		}
		seen[slug] = struct{}{}

		published := true
		if post.Published != nil {
			published = *post.Published
		}

		inputs = append(inputs, service.BlogInput{
			Slug:         slug,
			CardPosition: post.CardPosition,
			Title:        post.Title,
			Meta:         post.Meta,
			Summary:      post.Summary,
			Content:      post.Content,
			Published:    published,
		})
	}
	return inputs, nil
}

func seed(ctx context.Context, gdb *gorm.DB, inputs []service.BlogInput, reset bool) error {
	blogs := service.NewBlogService(gdb)

	if reset {
		removed, err := blogs.Clear(ctx)
		if err != nil {
			return err
		}
		logger.InfoWithFields("cleared blog rows", logger.Fields{"removed": removed})
	}

	for _, input := range inputs {
		blog, err := blogs.Upsert(ctx, input)
		if err != nil {
			return err
		}
		logger.InfoWithFields("blog upserted", logger.Fields{
			"slug":      blog.Slug,
			"read_time": blog.ReadTime,
			"published": blog.Published,
		})
	}
	return nil
}
