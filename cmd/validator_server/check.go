package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/json-validator-api/internal/config"
	"github.com/jonathan/json-validator-api/internal/validator"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a local file with the external validator",
	Long:  "Runs the external Java validator against a local file and prints the verdict. Exits non-zero when the input is not well-formed JSON.",
	RunE:  runCheck,
}

var (
	checkInput     string
	checkJavaBin   string
	checkClasspath string
	checkClass     string
)

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "in", "i", "", "Path to the file to validate (required)")
	checkCmd.Flags().StringVar(&checkJavaBin, "java-bin", "", "Java executable (default from JAVA_BIN or \"java\")")
	checkCmd.Flags().StringVar(&checkClasspath, "classpath", "", "Validator classpath (default from VALIDATOR_CLASSPATH or \"libs\")")
	checkCmd.Flags().StringVar(&checkClass, "class", "", "Validator entry class (default JsonValidator)")

	if err := checkCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(checkInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	envCfg := config.FromEnv()
	cfg := envCfg.MergeWithDefaults(config.Default())
	if checkJavaBin != "" {
		cfg.JavaBin = checkJavaBin
	}
	if checkClasspath != "" {
		cfg.Classpath = checkClasspath
	}
	if checkClass != "" {
		cfg.ValidatorClass = checkClass
	}

	runner := validator.NewRunner(cfg.JavaBin, cfg.Classpath, cfg.ValidatorClass)
	result, err := runner.Validate(cmd.Context(), string(content))
	if err != nil {
		return fmt.Errorf("validation failed to run: %w", err)
	}

	fmt.Fprintln(os.Stdout, result.Message)
	for i, e := range result.Errors {
		fmt.Fprintf(os.Stdout, "  %d. %s\n", i+1, e)
	}

	if !result.Valid {
		return fmt.Errorf("input is not well-formed JSON")
	}
	return nil
}
