package main

import (
	"github.com/spf13/cobra"
)

const (
	defaultVoice    = "en-US-Wavenet-D"
	defaultLanguage = "en-US"
)

type options struct {
	listVoices  bool
	voice       string
	language    string
	upload      bool
	driveFolder string
}

func newRootCommand(a *app) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "s2t [input_file] [output_file]",
		Short: "Text-to-Speech using Google Cloud API",
		Long: `Convert a .txt or .pdf file to an MP3 using Google Cloud Text-to-Speech,
or list the voices available for a language.`,
		Example: `  s2t speech.txt speech.mp3
  s2t --voice en-GB-Wavenet-B --language en-GB report.pdf report.mp3
  s2t --list-voices --language de-DE`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listVoices {
				return a.listVoices(cmd.Context(), opts.language)
			}
			if len(args) < 2 {
				_ = cmd.Help()
				return errUsage
			}
			return a.synthesize(cmd.Context(), args[0], args[1], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.listVoices, "list-voices", false, "List available voices for the language and exit")
	f.StringVar(&opts.voice, "voice", defaultVoice, "Voice name to use")
	f.StringVar(&opts.language, "language", defaultLanguage, "Language code")
	f.BoolVar(&opts.upload, "upload", a.cfg.DriveUploadEnabled, "Upload the MP3 to Google Drive after writing it")
	f.StringVar(&opts.driveFolder, "drive-folder", a.cfg.DriveFolderID, "Drive folder ID for uploads")

	return cmd
}
