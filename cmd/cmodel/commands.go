package main

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"cmodel/config"
	"cmodel/convert"
	"cmodel/edit"
)

const sourceHelp = `
SOURCE:
    HTML document with selection marked by caret characters (see "conversion.caret"
    in configuration): single caret is a collapsed selection, two carets delimit
    selected range.
`

func outputFlag(def config.OutputFmt) cli.Flag {
	return &cli.StringFlag{Name: "to", Value: def.String(),
		Usage: "output `TYPE` (supported types: " + strings.Join(config.OutputFmtNames(), ", ") + ")"}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:         "convert",
		Usage:        "Converts HTML document(s) to content model",
		OnUsageError: usageErrorHandler,
		Action:       convert.Run,
		Flags: []cli.Flag{
			outputFlag(config.OutputFmtJson),
			&cli.StringFlag{Name: "root", Usage: "convert only element matching CSS `SELECTOR`"},
			&cli.StringFlag{Name: "caret", Usage: "`CHARACTERS` marking selection in source text"},
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
			&cli.StringFlag{Name: "force-zip-cp",
				Usage: "force `ENCODING` for ALL non UTF-8 file names in processed archives (see IANA.org for character set names)"},
		},
		ArgsUsage: "SOURCE [DESTINATION]",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
SOURCE:
    HTML file(s) to convert, one of:
        "[path_to_file]page.html" - single document
        "[path_to_directory]directory" - every document under directory, recursively (symbolic links are not followed)
        "[path_to_archive]archive.zip[path_in_archive]" - every document under path in archive, or single one
        when path points to it

    Only .html, .htm and .xhtml files are considered when walking directories and
    archives, archives inside archives are skipped.

DESTINATION:
    directory to put results to, names come from "output.name_template"
    if absent - single document goes to STDOUT, anything else to current working directory
`,
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:         "delete",
		Usage:        "Converts HTML document and deletes selected content",
		OnUsageError: usageErrorHandler,
		Action:       deleteContent,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "direction", Value: edit.Selection.String(),
				Usage: "deletion `DIRECTION` (supported: " + strings.Join(edit.DirectionNames(), ", ") + ")"},
			&cli.BoolFlag{Name: "word", Usage: "around collapsed selection delete whole word"},
			&cli.BoolFlag{Name: "keep-entities", Usage: "entities are handled by owner and stay in the model"},
			outputFlag(config.OutputFmtTree),
		},
		ArgsUsage:          "SOURCE",
		CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
	}
}

func stateCommand() *cli.Command {
	return &cli.Command{
		Name:               "state",
		Usage:              "Reports format of selected content",
		OnUsageError:       usageErrorHandler,
		Action:             formatState,
		ArgsUsage:          "SOURCE",
		CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: usageErrorHandler,
		Action:       outputConfiguration,
		ArgsUsage:    "DESTINATION",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    file to write configuration to, STDOUT when absent

Active configuration is defaults with values from configuration file (--config)
on top. Use --default to see defaults embedded into the program.
`,
	}
}
