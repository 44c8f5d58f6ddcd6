package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cmodel/config"
	"cmodel/state"
)

// buildOutputPath returns output file path for converted source. Name comes
// from configured template, default is source base name. Unless NoDirs is
// set the source directory structure is kept under dst. Every path segment
// is cleaned and, if requested, transliterated.
func buildOutputPath(values Values, src, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)

	name := values.Name
	if tmpl := env.Cfg.Output.NameTemplate; tmpl != "" {
		expanded, err := expandTemplate(values, config.NameTemplateFieldName, tmpl)
		if err != nil {
			env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		} else if strings.TrimSpace(expanded) != "" {
			name = filepath.FromSlash(expanded)
		}
	}
	return makeFullPath(outDir, name, env.Cfg.Output.Format, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

// makeFullPath assembles expanded name, which may contain subdirectories,
// into full output path.
func makeFullPath(outDir, name string, format config.OutputFmt, env *state.LocalEnv) string {
	segments := splitPath(name)
	if len(segments) == 0 {
		return outDir
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments[:len(segments)-1] {
		parts = append(parts, cleanPathSegment(s, env))
	}
	parts = append(parts, cleanPathSegment(segments[len(segments)-1], env)+format.Ext())
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
