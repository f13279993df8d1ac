package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	oramacore "github.com/oramasearch/oramacore-client-go"
	"github.com/oramasearch/oramacore-client-go/internal/logger"
)

// Oversized JSONL lines show up in real exports; allow up to 16 MiB.
const maxDocumentLine = 16 * 1024 * 1024

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Insert and delete documents",
	}
	cmd.AddCommand(
		newDocInsertCmd(),
		newDocDeleteCmd(),
	)
	return cmd
}

func newDocInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert [file]",
		Short: "Insert documents from a file or stdin",
		Long: "Inserts documents into the configured collection. The input is a " +
			"JSON array or one JSON document per line (JSONL); \"-\" or no " +
			"argument reads stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return runDocInsert(cmd, path)
		},
	}
}

func runDocInsert(cmd *cobra.Command, path string) error {
	return withDocuments(cmd.Context(), func(ctx context.Context, docs *oramacore.DocumentService) error {
		in, cleanup, err := openInput(path)
		if err != nil {
			return err
		}
		defer cleanup()

		parsed, err := readDocuments(in)
		if err != nil {
			return err
		}
		if len(parsed) == 0 {
			fmt.Println("No documents to insert.")
			return nil
		}
		logger.FromContext(ctx).Debug("parsed documents", zap.Int("count", len(parsed)))

		if err := docs.Insert(ctx, parsed); err != nil {
			return fmt.Errorf("inserting documents: %w", err)
		}
		fmt.Printf("Inserted %d documents.\n", len(parsed))
		return nil
	})
}

func newDocDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete documents by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocDelete(cmd, args)
		},
	}
}

func runDocDelete(cmd *cobra.Command, ids []string) error {
	return withDocuments(cmd.Context(), func(ctx context.Context, docs *oramacore.DocumentService) error {
		if err := docs.Delete(ctx, ids); err != nil {
			return fmt.Errorf("deleting documents: %w", err)
		}
		fmt.Printf("Requested deletion of %d documents.\n", len(ids))
		return nil
	})
}

// openInput opens the document source. "-" means stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// readDocuments parses documents from a JSON array or a JSONL stream,
// detected by the first non-space byte.
func readDocuments(r io.Reader) ([]oramacore.Document, error) {
	br := bufio.NewReader(r)

	first, err := firstNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if first == '[' {
		var docs []oramacore.Document
		if err := json.NewDecoder(br).Decode(&docs); err != nil {
			return nil, fmt.Errorf("parsing document array: %w", err)
		}
		return docs, nil
	}

	var docs []oramacore.Document
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDocumentLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var doc oramacore.Document
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", line, err)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return docs, nil
}

func firstNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\n', '\r':
			if _, err := r.ReadByte(); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}
