package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-sitemark"
	"github.com/goliatone/go-sitemark/cmd/markdown/internal/bootstrap"
)

const stdinPath = "stdin"

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("markdown preview: %v", err)
	}
}

func runPreview(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("markdown-preview", flag.ContinueOnError)
	filePath := fs.String("file", "", "Markdown file to preview (reads stdin when empty)")
	engine := fs.String("engine", sitemark.EngineNative, "Render engine: native, goldmark or gomarkdown")
	extensions := fs.String("extensions", "", "Comma separated extensions for the CommonMark engines")
	hardWraps := fs.Bool("hard-wraps", false, "Treat newlines as line breaks (CommonMark engines)")
	showMeta := fs.Bool("frontmatter", false, "Print parsed front matter as JSON before the HTML")
	logLevel := fs.String("log-level", "", "Log render events to stderr at this level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	path := strings.TrimSpace(*filePath)
	var (
		source []byte
		err    error
	)
	if path == "" {
		path = stdinPath
		source, err = io.ReadAll(stdin)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		Engine:     *engine,
		LogLevel:   *logLevel,
		HardWraps:  *hardWraps,
		Extensions: bootstrap.SplitList(*extensions),
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	if module.Handlers == nil || module.Handlers.RenderDocument == nil {
		return fmt.Errorf("markdown commands not configured")
	}

	var result sitemark.ResultEnvelope
	cmd := sitemark.RenderDocumentCommand{
		Path:           path,
		Source:         source,
		ResultCallback: func(env sitemark.ResultEnvelope) { result = env },
	}
	if err := module.Handlers.RenderDocument.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	if *showMeta && result.Document != nil {
		meta, err := json.MarshalIndent(result.Document.FrontMatter.Raw, "", "  ")
		if err != nil {
			return fmt.Errorf("encode front matter: %w", err)
		}
		fmt.Fprintf(stdout, "Frontmatter:\n%s\n\n", meta)
	}

	fmt.Fprintln(stdout, result.HTML)
	return nil
}
