package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cmodel/config"
	"cmodel/convert"
	"cmodel/edit"
	"cmodel/formatting"
	"cmodel/model"
	"cmodel/state"
)

func loadSource(ctx context.Context, cmd *cli.Command) (*convert.Loaded, error) {
	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return nil, errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	env.Rpt.Store("input/"+filepath.Base(src), src)

	res, err := convert.LoadDocument(f, "", &env.Cfg.Conversion, env.Log)
	if err != nil {
		return nil, fmt.Errorf("unable to convert source (%s): %w", src, err)
	}
	return res, nil
}

// deletionSteps returns steps run after selected content is removed.
func deletionSteps(dir edit.Direction, word bool) []edit.Step {
	if dir == edit.Selection {
		return nil
	}
	steps := make([]edit.Step, 0, 2)
	if word {
		steps = append(steps, edit.DeleteWordStep(dir))
	}
	return append(steps, edit.DeleteCollapsedStep(dir))
}

// deleteFromDocument runs deletion pipeline. Entities survive when keep is
// set, which stands for an owner taking care of them.
func deleteFromDocument(doc *model.Document, dir edit.Direction, word, keep, normalize bool, log *zap.Logger) *edit.DeleteResult {
	onEntity := func(e *model.Entity, op edit.EntityOperation) bool {
		log.Debug("Entity removal requested", zap.String("id", e.ID), zap.String("type", e.EntityType), zap.Stringer("operation", op), zap.Bool("kept", keep))
		return keep
	}
	res := edit.DeleteSelection(doc, onEntity, log, deletionSteps(dir, word)...)
	if normalize {
		edit.Normalize(doc)
	}
	return res
}

func deleteContent(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("delete")

	dir, err := edit.ParseDirection(cmd.String("direction"))
	if err != nil {
		return fmt.Errorf("bad deletion direction: %w", err)
	}
	out := env.Cfg.Output
	if out.Format, err = config.ParseOutputFmt(cmd.String("to")); err != nil {
		return fmt.Errorf("bad output format: %w", err)
	}
	keep := env.Cfg.Editing.KeepEntities || cmd.Bool("keep-entities")

	loaded, err := loadSource(ctx, cmd)
	if err != nil {
		return err
	}

	res := deleteFromDocument(loaded.Document, dir, cmd.Bool("word"), keep, env.Cfg.Editing.Normalize, log)
	log.Info("Deletion completed",
		zap.Stringer("direction", dir),
		zap.Stringer("result", res.Kind),
		zap.Bool("changed", res.IsChanged),
		zap.Bool("undo", res.AddUndoSnapshot))

	return convert.WriteModel(os.Stdout, loaded.Document, &out)
}

func formatState(ctx context.Context, cmd *cli.Command) error {
	loaded, err := loadSource(ctx, cmd)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(formatting.RetrieveFormatState(loaded.Document))
}
