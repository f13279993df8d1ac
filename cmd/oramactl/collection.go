package main

import (
	"bufio"
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	oramacore "github.com/oramasearch/oramacore-client-go"
)

func newCollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}
	cmd.AddCommand(
		newCollectionCreateCmd(),
		newCollectionListCmd(),
		newCollectionGetCmd(),
		newCollectionDeleteCmd(),
	)
	return cmd
}

type collectionCreateFlags struct {
	description     string
	language        string
	writeKey        string
	readKey         string
	embeddingModel  string
	embeddingFields []string
}

func newCollectionCreateCmd() *cobra.Command {
	var flags collectionCreateFlags

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a collection",
		Long:  "Creates a collection. API keys are generated when not provided.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionCreate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Collection description")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "Default language (e.g. English)")
	cmd.Flags().StringVar(&flags.writeKey, "write-api-key", "", "Write API key (generated when omitted)")
	cmd.Flags().StringVar(&flags.readKey, "read-api-key", "", "Read API key (generated when omitted)")
	cmd.Flags().StringVar(&flags.embeddingModel, "embedding-model", "", "Embedding model identifier")
	cmd.Flags().StringSliceVar(&flags.embeddingFields, "embedding-fields", nil, "Document fields to embed")

	return cmd
}

func runCollectionCreate(cmd *cobra.Command, id string, flags collectionCreateFlags) error {
	return withManager(cmd.Context(), func(ctx context.Context, mgr *oramacore.Manager) error {
		params := oramacore.NewCollectionParams{
			ID:          id,
			Description: flags.description,
			WriteAPIKey: flags.writeKey,
			ReadAPIKey:  flags.readKey,
			Language:    oramacore.Language(flags.language),
		}
		if flags.embeddingModel != "" || len(flags.embeddingFields) > 0 {
			params.Embeddings = &oramacore.EmbeddingsConfig{
				Model:          oramacore.EmbeddingModel(flags.embeddingModel),
				DocumentFields: flags.embeddingFields,
			}
		}

		resp, err := mgr.CreateCollection(ctx, params)
		if err != nil {
			return fmt.Errorf("creating collection: %w", err)
		}

		fmt.Printf("Created collection %s\n", resp.ID)
		fmt.Printf("  write api key: %s\n", resp.WriteAPIKey)
		fmt.Printf("  read api key:  %s\n", resp.ReadAPIKey)
		fmt.Println("Store these keys now: the service does not return them again.")
		return nil
	})
}

func newCollectionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionList(cmd)
		},
	}
}

func runCollectionList(cmd *cobra.Command) error {
	return withManager(cmd.Context(), func(ctx context.Context, mgr *oramacore.Manager) error {
		cols, err := mgr.ListCollections(ctx)
		if err != nil {
			return fmt.Errorf("listing collections: %w", err)
		}

		if len(cols) == 0 {
			fmt.Println("No collections.")
			return nil
		}
		for _, col := range cols {
			displayCollection(col)
		}
		return nil
	})
}

func newCollectionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionGet(cmd, args[0])
		},
	}
}

func runCollectionGet(cmd *cobra.Command, id string) error {
	return withManager(cmd.Context(), func(ctx context.Context, mgr *oramacore.Manager) error {
		col, err := mgr.GetCollection(ctx, id)
		if err != nil {
			return fmt.Errorf("getting collection: %w", err)
		}
		displayCollection(col)
		return nil
	})
}

func newCollectionDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionDelete(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runCollectionDelete(cmd *cobra.Command, id string, force bool) error {
	return withManager(cmd.Context(), func(ctx context.Context, mgr *oramacore.Manager) error {
		if !force && !confirmAction(fmt.Sprintf("Delete collection %s and all its documents?", id)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := mgr.DeleteCollection(ctx, id); err != nil {
			return fmt.Errorf("deleting collection: %w", err)
		}
		fmt.Printf("Deleted collection %s\n", id)
		return nil
	})
}

func displayCollection(col oramacore.ExistingCollection) {
	fmt.Printf("%s (%d documents)\n", col.ID, col.DocumentCount)
	if col.Description != "" {
		fmt.Printf("  %s\n", col.Description)
	}
	for _, name := range slices.Sorted(maps.Keys(col.Fields)) {
		fmt.Printf("  %s: %s\n", name, col.Fields[name])
	}
}

func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
