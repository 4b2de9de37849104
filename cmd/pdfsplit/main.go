// Command pdfsplit extracts pages from a PDF through a PDF splitter server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"pdf_splitter/client"
	"pdf_splitter/pdf"
	"pdf_splitter/selection"
)

// RequestTimeout bounds the whole login, upload and download sequence
const RequestTimeout = 5 * time.Minute

// rangeFlag collects page ranges such as "1-3,7"; it may be repeated
type rangeFlag struct {
	ranges []selection.Range
}

func (f *rangeFlag) String() string {
	return selection.String(f.ranges)
}

func (f *rangeFlag) Set(value string) error {
	ranges, err := selection.ParseRanges(value)
	if err != nil {
		return err
	}
	f.ranges = append(f.ranges, ranges...)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdfsplit: ")

	server := flag.String("server", getEnv("PDFSPLIT_SERVER", "http://localhost:8080"), "splitter server URL")
	user := flag.String("user", os.Getenv("PDFSPLIT_USER"), "username")
	password := flag.String("password", os.Getenv("PDFSPLIT_PASSWORD"), "password")
	out := flag.String("o", "", "output file name (default: name suggested by the server, - for stdout)")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	pages := &rangeFlag{}
	flag.Var(pages, "p", "pages to extract, e.g. 1-3,7 (may be repeated)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one input file is required")
		flag.Usage()
		os.Exit(2)
	}
	if len(pages.ranges) == 0 {
		fmt.Fprintln(os.Stderr, "error: no pages given, use -p")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if err := run(ctx, *server, *user, *password, flag.Arg(0), pages.ranges, *out, *force); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, server, user, password, input string, ranges []selection.Range, out string, force bool) error {
	c, err := client.New(server)
	if err != nil {
		return err
	}
	notifier := client.NewNotifier(client.DefaultToastDelay, func(n client.Notification) {
		if n.Kind == client.KindError {
			log.Printf("error: %s", n.Message)
		} else {
			log.Print(n.Message)
		}
	})
	app := client.NewApp(c, pdf.NewLibraryEngine(), client.WithNotifier(notifier))

	if err := app.Start(ctx); err != nil {
		if !errors.Is(err, client.ErrUnauthenticated) {
			return err
		}
		if user == "" {
			return errors.New("not signed in and no -user given")
		}
		if err := app.Login(ctx, user, password); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if err := app.Load(ctx, filepath.Base(input), data); err != nil {
		return err
	}

	app.SetRanges(ranges)
	if _, err := app.ApplyRanges(); err != nil {
		return err
	}

	res, err := app.Submit(ctx)
	if err != nil {
		return err
	}

	if out == "" {
		out = res.Filename
	}
	w, closer, err := openOutputFile(out, force)
	if err != nil {
		return err
	}
	return writeOutput(w, closer, res.Data)
}

// writeOutput writes data and always closes the output, reporting the first
// error of the two.
func writeOutput(w io.Writer, closer io.Closer, data []byte) (err error) {
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); err == nil {
				err = cerr
			}
		}()
	}
	_, err = w.Write(data)
	return err
}

func openOutputFile(outputFile string, forceOverwrite bool) (io.Writer, io.Closer, error) {
	if outputFile == "-" {
		return os.Stdout, nil, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if forceOverwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(outputFile, flags, 0666)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
