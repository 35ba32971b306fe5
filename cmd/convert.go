package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eurocv/eurocv/internal/convert"
	"github.com/eurocv/eurocv/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptOverwrite = "Overwrite"
	PromptAbort     = "Abort"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a resume file (PDF, DOCX) to a Europass CV",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runConvert(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("out", "o", "", "write Europass JSON to this file (default is stdout)")
	convertCmd.Flags().String("out-xml", "", "write Europass XML to this file")
	convertCmd.Flags().StringP("locale", "l", "en-US", "locale for the output, e.g. nl-NL")
	convertCmd.Flags().Bool("no-photo", false, "never include a photo in the output (GDPR)")
	convertCmd.Flags().Bool("ocr", false, "use OCR for scanned PDF pages")
	convertCmd.Flags().Bool("no-validate", false, "skip structural validation of the output")
	convertCmd.Flags().BoolP("force", "f", false, "overwrite output files without asking")

	viper.BindPFlag("locale", convertCmd.Flags().Lookup("locale"))
	viper.BindPFlag("ocr", convertCmd.Flags().Lookup("ocr"))
}

// runConvert is the main command for the cli.
func runConvert(cmd *cobra.Command, path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the eurocv", zap.String("version", version))

	if config != nil {
		pretty, _ := json.MarshalIndent(config, "", "  ")
		logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))
	}

	opts := buildOptions(cmd, config)
	jsonFile, xmlFile := outputTargets(cmd, config)

	if xmlFile != "" && jsonFile == "" {
		opts.Format = convert.FormatXML
	}
	if xmlFile != "" && jsonFile != "" {
		opts.Format = convert.FormatBoth
	}

	force := cmd.Flag("force").Value.String() == "true"
	for _, target := range []string{jsonFile, xmlFile} {
		if target == "" || force {
			continue
		}
		if err := confirmOverwrite(target); err != nil {
			logger.Info("exiting", zap.String("reason", "output file kept"), zap.String("file", target))
			return
		}
	}

	result, err := convert.New(logger).Convert(path, opts)
	if err != nil {
		logger.Fatal("conversion failed", zap.Error(err))
	}

	for _, finding := range result.ValidationErrors {
		logger.Warn("validation", zap.String("finding", finding))
	}

	if err := writeOutputs(result, jsonFile, xmlFile); err != nil {
		logger.Fatal("writing output", zap.Error(err))
	}

	logger.Info("conversion finished",
		zap.String("file", path),
		zap.Int("work_entries", len(result.Resume.WorkExperience)),
		zap.Int("education_entries", len(result.Resume.Education)),
		zap.Int("languages", len(result.Resume.Languages)),
		zap.Int("skills", len(result.Resume.Skills)),
		zap.Int("validation_findings", len(result.ValidationErrors)),
	)
}

func buildOptions(cmd *cobra.Command, config *Config) convert.Options {
	opts := convert.Options{
		Locale:       viper.GetString("locale"),
		IncludePhoto: true,
		Format:       convert.FormatJSON,
		UseOCR:       viper.GetBool("ocr"),
		Validate:     true,
	}

	if config != nil {
		if config.Locale != "" && !cmd.Flag("locale").Changed {
			opts.Locale = config.Locale
		}
		if config.Validate != nil {
			opts.Validate = *config.Validate
		}
		opts.IncludePhoto = config.Photo || !configHasPhotoKey()
	}

	if cmd.Flag("no-photo").Value.String() == "true" {
		opts.IncludePhoto = false
	}
	if cmd.Flag("no-validate").Value.String() == "true" {
		opts.Validate = false
	}

	return opts
}

// configHasPhotoKey distinguishes "photo: false" in the config from the
// key being absent, where photo inclusion stays on.
func configHasPhotoKey() bool {
	return viper.IsSet("photo")
}

func outputTargets(cmd *cobra.Command, config *Config) (jsonFile, xmlFile string) {
	jsonFile = cmd.Flag("out").Value.String()
	xmlFile = cmd.Flag("out-xml").Value.String()

	if config != nil && config.Output != nil {
		if jsonFile == "" {
			jsonFile = config.Output.JSONFile
		}
		if xmlFile == "" {
			xmlFile = config.Output.XMLFile
		}
	}
	return jsonFile, xmlFile
}

func confirmOverwrite(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s already exists", path),
		Items: []string{PromptOverwrite, PromptAbort},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}
	if action != PromptOverwrite {
		return fmt.Errorf("kept existing file %s", path)
	}
	return nil
}

func writeOutputs(result *convert.Result, jsonFile, xmlFile string) error {
	if jsonFile != "" {
		if err := os.WriteFile(jsonFile, result.JSON, 0o644); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	} else if len(result.JSON) > 0 {
		fmt.Println(strings.TrimSpace(string(result.JSON)))
	}

	if xmlFile != "" {
		if err := os.WriteFile(xmlFile, []byte(result.XML), 0o644); err != nil {
			return fmt.Errorf("write xml: %w", err)
		}
	}
	return nil
}
