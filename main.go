// Command freefem-highlight renders FreeFem++ scripts with syntax
// highlighting: ANSI output for terminals, HTML for documentation, a raw
// token dump for debugging rule changes, and an interactive pager.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/FreeFem/freefem-highlight/freefem"
	"github.com/FreeFem/freefem-highlight/render"
)

func main() {
	var (
		format      = flag.String("f", "terminal", "output format: terminal, html or tokens")
		styleName   = flag.String("s", "monokai", "chroma style name for terminal and html output")
		output      = flag.String("o", "", "write output to this file instead of stdout")
		lineNumbers = flag.Bool("n", false, "number lines in html output")
		standalone  = flag.Bool("standalone", false, "emit a complete html document")
		view        = flag.Bool("view", false, "open the file in the terminal pager")
		watch       = flag.Bool("watch", false, "keep running and rerender when an input file changes")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: freefem-highlight [flags] file.edp...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := render.Options{
		Style:       *styleName,
		LineNumbers: *lineNumbers,
		Standalone:  *standalone,
	}

	if *view {
		if flag.NArg() != 1 {
			die("-view takes exactly one file")
		}
		path := flag.Arg(0)
		contents, err := os.ReadFile(path)
		if err != nil {
			die(err.Error())
		}
		if err := runViewer(path, contents); err != nil {
			die(err.Error())
		}
		return
	}

	rerender := func(path string) error {
		return renderFile(path, *format, *output, opts)
	}

	for _, path := range flag.Args() {
		if err := rerender(path); err != nil {
			die(err.Error())
		}
	}

	if *watch {
		if err := watchFiles(flag.Args(), rerender); err != nil {
			die(err.Error())
		}
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "freefem-highlight: "+msg)
	os.Exit(1)
}

func renderFile(path, format, output string, opts render.Options) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(contents)

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "terminal":
		return render.Terminal(w, source, opts)
	case "html":
		return render.HTML(w, source, opts)
	case "tokens":
		return dumpTokens(w, source)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func dumpTokens(w io.Writer, source string) error {
	for _, token := range freefem.FreeFem.Tokenize(source) {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%q\n", token.Pos, token.Category, token.Value); err != nil {
			return err
		}
	}
	return nil
}

// watchFiles rerenders an input whenever it changes on disk, for a
// save-and-refresh documentation loop. The parent directory is watched
// rather than the file itself because editors often replace the file on
// save, which would drop an inode-based watch.
func watchFiles(paths []string, rerender func(path string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	fmt.Fprintln(os.Stderr, "freefem-highlight: watching for changes, interrupt to stop")
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if err := rerender(event.Name); err != nil {
				fmt.Fprintf(os.Stderr, "freefem-highlight: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "freefem-highlight: watch: %v\n", err)
		}
	}
}
