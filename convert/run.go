package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"

	"cmodel/archive"
	"cmodel/config"
	"cmodel/model"
	"cmodel/state"
)

// stdout receives result when no destination was given for a single file.
var stdout io.Writer = os.Stdout

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if cmd.IsSet("to") {
		format, err := config.ParseOutputFmt(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Output.Format))
		} else {
			env.Cfg.Output.Format = format
		}
	}
	if cmd.IsSet("root") {
		env.Cfg.Conversion.RootSelector = cmd.String("root")
	}
	if cmd.IsSet("caret") {
		env.Cfg.Conversion.Caret = cmd.String("caret")
	}

	env.NoDirs = cmd.Bool("nodirs")
	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Output.Overwrite

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set, ignoring", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Cfg.Output.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("converted", env.Converted), zap.Int("failed", env.Failed))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly. Empty dst means single file goes to stdout and
// everything else to current directory.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if dst, err = defaultDestination(dst); err != nil {
				return err
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			if dst, err = defaultDestination(dst); err != nil {
				return err
			}
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		doc, enc, err := isHTMLFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if doc && len(tail) == 0 {
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to open file: %w", err)
			}
			defer file.Close()
			return processFile(ctx, file, enc, filepath.Base(head), dst, log)
		}
		return fmt.Errorf("input was not recognized as HTML document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

func defaultDestination(dst string) (string, error) {
	if len(dst) != 0 {
		return dst, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get working directory: %w", err)
	}
	return wd, nil
}

// processDir walks directory tree finding HTML documents and archives and
// processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		arc, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if arc {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		doc, enc, err := isHTMLFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFile(ctx, file, enc, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive walks all files inside archive, finds HTML documents under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	cp := state.EnvFromContext(ctx).CodePage

	return archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, enc, err := isHTMLInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", arc), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document", zap.String("archive", arc), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processFile(ctx, r, enc, filepath.Join(pathOut, filepath.FromSlash(pathInArchive)), dst, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
}

// processFile converts single HTML document. "src" is the source path
// relative to the original input (just base name when a file was given).
// "dst" is destination directory, when empty result goes to stdout.
func processFile(ctx context.Context, r io.Reader, enc srcEncoding, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	outputName := "STDOUT"

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		// one broken document should not stop the batch
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
		env.Tally(rerr)
	}(time.Now())

	res, err := LoadDocument(selectReader(r, enc), contentType(enc), &env.Cfg.Conversion, log)
	if err != nil {
		return fmt.Errorf("unable to convert html source (%s): %w", src, err)
	}

	if len(dst) == 0 {
		var buf bytes.Buffer
		if err := WriteModel(&buf, res.Document, &env.Cfg.Output); err != nil {
			return err
		}
		env.Rpt.StoreData("result/"+filepath.Base(src)+env.Cfg.Output.Format.Ext(), buf.Bytes())
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	outputName = buildOutputPath(newValues(src, res.Title, res.Language, env.Cfg.Output.Format), src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := WriteModel(out, res.Document, &env.Cfg.Output); err != nil {
		out.Close()
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Store conversion result for debugging
	env.Rpt.Store("result/"+filepath.ToSlash(strings.TrimPrefix(outputName, dst)), outputName)
	return nil
}

// Loaded is converted document along with metadata of its source.
type Loaded struct {
	Document *model.Document
	Title    string
	Language string
}

// LoadDocument parses HTML and converts element selected by configured root
// selector. Carets in text become document selection.
func LoadDocument(r io.Reader, contentType string, cfg *config.ConversionConfig, log *zap.Logger) (*Loaded, error) {
	doc, err := ParseHTML(r, contentType)
	if err != nil {
		return nil, err
	}
	root, err := FindRoot(doc, cfg.RootSelector)
	if err != nil {
		return nil, err
	}

	opts := OptionsFromConfig(cfg, log)
	if cfg.Caret != "" {
		sel, err := SelectionFromCaret(root, cfg.Caret)
		if err != nil {
			return nil, err
		}
		if sel != nil {
			opts = append(opts, WithRegularSelection(sel))
		}
	}

	res := &Loaded{Document: Convert(root, NewContext(opts...))}
	gq := goquery.NewDocumentFromNode(doc)
	res.Title = gq.Find("head > title").First().Text()
	if lang, ok := gq.Find("html").First().Attr("lang"); ok {
		if tag, err := language.Parse(lang); err == nil {
			res.Language = tag.String()
		}
	}
	return res, nil
}

// OptionsFromConfig translates configuration into conversion options.
func OptionsFromConfig(cfg *config.ConversionConfig, log *zap.Logger) []Option {
	opts := []Option{
		WithLogger(log),
		WithZoomScale(cfg.ZoomScale),
		WithAllowCacheElement(cfg.AllowCacheElement),
		WithDefaultFormat(cfg.DefaultFormat.SegmentFormat()),
	}
	for _, tag := range cfg.DisabledTags {
		a := atom.Lookup([]byte(strings.ToLower(tag)))
		if a == 0 {
			if log != nil {
				log.Warn("Unknown tag cannot be disabled", zap.String("tag", tag))
			}
			continue
		}
		opts = append(opts, WithProcessorOverride(a, skipProcessor))
	}
	return opts
}

// WriteModel outputs document in configured format.
func WriteModel(w io.Writer, doc *model.Document, cfg *config.OutputConfig) error {
	switch cfg.Format {
	case config.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if cfg.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("unable to encode model: %w", err)
		}
		return nil
	case config.OutputFmtTree:
		_, err := io.WriteString(w, doc.String())
		return err
	}
	return fmt.Errorf("unsupported output format: %s", cfg.Format)
}
